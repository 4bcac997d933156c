package readstore

import (
	"context"
	"fmt"
	"strings"

	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// listQuery describes one paginated listing. Columns in the whitelist are the
// only identifiers that reach the SQL text; every value is a bind parameter.
type listQuery struct {
	selectSQL string
	fromSQL   string
	conds     []string
	args      []any
	idColumn  string
}

func (q listQuery) build(p queries.ListParams) (pageSQL, countSQL string, args []any) {
	conds := append([]string(nil), q.conds...)
	args = append([]any(nil), q.args...)
	for _, f := range p.Filters {
		args = append(args, f.Value)
		conds = append(conds, fmt.Sprintf("%s %s $%d", f.Column, f.Op, len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	order := make([]string, 0, len(p.Sort)+1)
	for _, srt := range p.Sort {
		dir := "ASC"
		if srt.Desc {
			dir = "DESC"
		}
		order = append(order, srt.Column+" "+dir)
	}
	order = append(order, q.idColumn+" ASC")

	countSQL = "SELECT count(*) " + q.fromSQL + where
	pageSQL = q.selectSQL + " " + q.fromSQL + where +
		" ORDER BY " + strings.Join(order, ", ") +
		fmt.Sprintf(" LIMIT %d OFFSET %d", p.Limit, p.Offset())
	return pageSQL, countSQL, args
}

func fetchList[T any](ctx context.Context, conn db.DBTX, lq listQuery, p queries.ListParams, what string) ([]*T, int64, error) {
	pageSQL, countSQL, args := lq.build(p)

	var total int64
	if err := conn.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count "+what, err)
	}

	rows, err := conn.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list "+what, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to scan "+what, err)
	}
	return items, total, nil
}

func fetchOne[T any](ctx context.Context, conn db.DBTX, sql string, what string, args ...any) (*T, error) {
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find "+what, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find "+what, err)
	}
	return item, nil
}

package readstore

import (
	"context"

	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(db db.DBTX) *CartReadStore {
	return &CartReadStore{db: db}
}

func (r *CartReadStore) Items(ctx context.Context, userID uuid.UUID) ([]*queries.CartItemView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ci.course_id, c.name AS course_name, c.slug, c.price, ci.added_at
		FROM cart_items ci
		JOIN courses c ON c.id = ci.course_id
		WHERE ci.user_id = $1 AND c.active
		ORDER BY ci.added_at, ci.course_id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[queries.CartItemView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan cart items", err)
	}
	return items, nil
}

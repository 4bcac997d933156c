package readstore

import (
	"context"
	"time"

	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const statsCountsSQL = `
	SELECT
		(SELECT count(*) FROM users WHERE active)                                  AS num_users,
		(SELECT count(*) FROM manual_transactions)                                 AS num_manual_transactions,
		(SELECT count(*) FROM transactions)                                        AS num_transactions,
		(SELECT count(*) FROM coupons)                                             AS num_coupons,
		(SELECT count(*) FROM affiliate_codes)                                     AS num_affiliates,
		(SELECT count(*) FROM courses)                                             AS num_courses,
		(SELECT count(*) FROM users WHERE role IN ('admin', 'super-admin'))        AS num_admins,
		(SELECT count(*) FROM web_forms WHERE form_type = 'becomeInstructor')      AS num_become_instructor_forms`

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(db db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: db}
}

func (r *StatsReadStore) Counts(ctx context.Context) (*queries.StatsCounts, error) {
	return fetchOne[queries.StatsCounts](ctx, r.db, statsCountsSQL, "stats counts")
}

func (r *StatsReadStore) UserSignups(ctx context.Context, period queries.Period, since time.Time) ([]queries.Bucket, error) {
	return r.buckets(ctx, "FROM users WHERE created_at >= $2", period, since, "user signups")
}

func (r *StatsReadStore) InstructorForms(ctx context.Context, period queries.Period, since time.Time) ([]queries.Bucket, error) {
	return r.buckets(ctx, "FROM web_forms WHERE form_type = 'becomeInstructor' AND created_at >= $2", period, since, "instructor forms")
}

// buckets groups rows by UTC calendar period. period is bound as a parameter.
func (r *StatsReadStore) buckets(ctx context.Context, from string, period queries.Period, since time.Time, what string) ([]queries.Bucket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date_trunc($1, created_at AT TIME ZONE 'UTC') AT TIME ZONE 'UTC' AS start, count(*) AS count
		`+from+`
		GROUP BY 1 ORDER BY 1`, string(period), since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to group "+what, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[queries.Bucket])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan "+what, err)
	}
	return out, nil
}

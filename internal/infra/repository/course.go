package repository

import (
	"context"

	"course-checkout/internal/domain/course"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type CourseRepository struct {
	db db.DBTX
}

func NewCourseRepository(db db.DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO courses (`+converter.CourseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		converter.CourseArgs(c)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create course", err)
	}
	return nil
}

// Update leaves total_sold and rating alone; they move through IncrementSales and SetRating.
func (r *CourseRepository) Update(ctx context.Context, c *course.Course) error {
	amount, startsAt, endsAt, applied := converter.DiscountArgs(c.Discount())
	tag, err := r.db.Exec(ctx, `
		UPDATE courses SET
			name = $2, slug = $3, description = $4, category = $5, price = $6,
			discount_amount = $7, discount_starts_at = $8, discount_ends_at = $9, discount_applied = $10,
			stripe_price_id = $11, is_published = $12, active = $13, updated_at = $14
		WHERE id = $1`,
		c.ID(), c.Name(), c.Slug(), c.Description(), c.Category(), c.Price(),
		amount, startsAt, endsAt, applied,
		c.StripePriceID(), c.IsPublished(), c.IsActive(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update course", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*course.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+converter.CourseColumns+`
		FROM courses
		WHERE id = $1 AND (active OR $2)`,
		id, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find course", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.CourseRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find course", err)
	}
	return converter.CourseFromRow(row), nil
}

func (r *CourseRepository) LockWithDiscount(ctx context.Context) ([]*course.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+converter.CourseColumns+`
		FROM courses
		WHERE active AND discount_amount IS NOT NULL
		ORDER BY id
		FOR UPDATE`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock discounted courses", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.CourseRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan discounted courses", err)
	}
	out := make([]*course.Course, 0, len(collected))
	for _, row := range collected {
		out = append(out, converter.CourseFromRow(row))
	}
	return out, nil
}

func (r *CourseRepository) IncrementSales(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE courses SET total_sold = total_sold + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment course sales", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("course not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourseRepository) SetRating(ctx context.Context, id uuid.UUID, rating decimal.Decimal) error {
	_, err := r.db.Exec(ctx, `UPDATE courses SET rating = $2, updated_at = now() WHERE id = $1`, id, rating)
	if err != nil {
		return infra.WrapRepoErr("failed to set course rating", err)
	}
	return nil
}

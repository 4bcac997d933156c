package repository

import (
	"context"

	"course-checkout/internal/domain/review"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(db db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (`+converter.ReviewColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		converter.ReviewArgs(rev)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, `
		UPDATE reviews SET rating = $2, comment = $3, approved = $4, updated_at = $5
		WHERE id = $1`,
		rev.ID(), rev.Rating().Value(), rev.Comment().String(), rev.IsApproved(), rev.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.ReviewColumns+` FROM reviews WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.ReviewRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	return converter.ReviewFromRow(row), nil
}

func (r *ReviewRepository) ApprovedRatings(ctx context.Context, courseID uuid.UUID) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT rating FROM reviews WHERE course_id = $1 AND approved`, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load approved ratings", err)
	}
	ratings, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan approved ratings", err)
	}
	return ratings, nil
}

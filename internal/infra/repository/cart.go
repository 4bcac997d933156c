package repository

import (
	"context"
	"time"

	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(db db.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Add(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO cart_items (user_id, course_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, course_id) DO NOTHING`,
		userID, courseID, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to add cart item", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1 AND course_id = $2`, userID, courseID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove cart item", err)
	}
	return tag.RowsAffected() == 1, nil
}

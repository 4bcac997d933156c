package repository

import (
	"context"
	"time"

	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"

	"github.com/google/uuid"
)

type EnrollmentRepository struct {
	db db.DBTX
}

func NewEnrollmentRepository(db db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Enroll(ctx context.Context, userID, courseID, transactionID uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO enrollments (user_id, course_id, transaction_id, enrolled_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, course_id) DO NOTHING`,
		userID, courseID, transactionID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to enroll user", err)
	}
	return nil
}

func (r *EnrollmentRepository) Exists(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check enrollment", err)
	}
	return exists, nil
}

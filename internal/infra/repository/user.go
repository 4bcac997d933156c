package repository

import (
	"context"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (`+converter.UserColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		converter.UserArgs(u)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET
			name = $2, email = $3, password_hash = $4, role = $5, verified = $6,
			verification_token = $7, password_changed_at = $8, credit_id = $9,
			affiliate_code_id = $10, active = $11, updated_at = $12
		WHERE id = $1`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsVerified(),
		u.VerificationToken(), u.PasswordChangedAt(), u.CreditID(),
		u.AffiliateCodeID(), u.IsActive(), u.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) FindByVerificationToken(ctx context.Context, hashedToken string) (*user.User, error) {
	return r.findOne(ctx, `WHERE verification_token = $1`, hashedToken)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.UserColumns+` FROM users `+where, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.UserRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return converter.UserFromRow(row), nil
}

package converter

import (
	"time"

	"course-checkout/internal/domain/user"

	"github.com/google/uuid"
)

const UserColumns = `id, name, email, password_hash, role, verified, verification_token,
	password_changed_at, credit_id, affiliate_code_id, active, created_at, updated_at`

type UserRow struct {
	ID                uuid.UUID  `db:"id"`
	Name              string     `db:"name"`
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password_hash"`
	Role              string     `db:"role"`
	Verified          bool       `db:"verified"`
	VerificationToken *string    `db:"verification_token"`
	PasswordChangedAt *time.Time `db:"password_changed_at"`
	CreditID          *uuid.UUID `db:"credit_id"`
	AffiliateCodeID   *uuid.UUID `db:"affiliate_code_id"`
	Active            bool       `db:"active"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func UserFromRow(r UserRow) *user.User {
	return user.Reconstruct(user.Snapshot(r))
}

func UserArgs(u *user.User) []any {
	return []any{
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsVerified(), u.VerificationToken(),
		u.PasswordChangedAt(), u.CreditID(), u.AffiliateCodeID(), u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	}
}

package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// passwordStampSkew backdates passwordChangedAt so a token issued in the same
// second as the change is still accepted.
const passwordStampSkew = time.Second

type User struct {
	id                uuid.UUID
	name              string
	email             Email
	passwordHash      string
	role              Role
	verified          bool
	verificationToken *string
	passwordChangedAt *time.Time
	creditID          *uuid.UUID
	affiliateCodeID   *uuid.UUID
	active            bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewUser(name string, email Email, passwordHash string, role Role, now time.Time) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

type Snapshot struct {
	ID                uuid.UUID
	Name              string
	Email             string
	PasswordHash      string
	Role              string
	Verified          bool
	VerificationToken *string
	PasswordChangedAt *time.Time
	CreditID          *uuid.UUID
	AffiliateCodeID   *uuid.UUID
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Reconstruct rebuilds a persisted user without re-running creation rules.
func Reconstruct(s Snapshot) *User {
	return &User{
		id:                s.ID,
		name:              s.Name,
		email:             Email{value: s.Email},
		passwordHash:      s.PasswordHash,
		role:              Role(s.Role),
		verified:          s.Verified,
		verificationToken: s.VerificationToken,
		passwordChangedAt: s.PasswordChangedAt,
		creditID:          s.CreditID,
		affiliateCodeID:   s.AffiliateCodeID,
		active:            s.Active,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}
}

// ChangePassword replaces the hash and stamps passwordChangedAt.
func (u *User) ChangePassword(newHash string, now time.Time) {
	changedAt := now.Add(-passwordStampSkew)
	u.passwordHash = newHash
	u.passwordChangedAt = &changedAt
	u.updatedAt = now
}

// ChangedPasswordAfter reports whether the password changed after a token was issued.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.passwordChangedAt == nil {
		return false
	}
	return u.passwordChangedAt.Truncate(time.Second).After(issuedAt.Truncate(time.Second))
}

func (u *User) SetVerificationToken(hashedToken string) {
	u.verificationToken = &hashedToken
}

func (u *User) MarkVerified(creditID uuid.UUID, now time.Time) {
	u.verified = true
	u.verificationToken = nil
	u.creditID = &creditID
	u.updatedAt = now
}

// AssignAffiliateCode links the user to the affiliate code they own. A nil id
// clears the link.
func (u *User) AssignAffiliateCode(id *uuid.UUID, now time.Time) {
	u.affiliateCodeID = id
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID                 { return u.id }
func (u *User) Name() string                  { return u.name }
func (u *User) Email() Email                  { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() Role                    { return u.role }
func (u *User) IsVerified() bool              { return u.verified }
func (u *User) VerificationToken() *string    { return u.verificationToken }
func (u *User) PasswordChangedAt() *time.Time { return u.passwordChangedAt }
func (u *User) CreditID() *uuid.UUID          { return u.creditID }
func (u *User) AffiliateCodeID() *uuid.UUID   { return u.affiliateCodeID }
func (u *User) IsActive() bool                { return u.active }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

package usecase

import (
	"context"

	"course-checkout/internal/domain/user"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/jwt"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenRevoked = errs.Unauthorized("token issued before the last password change")
	ErrTokenOwner   = errs.Unauthorized("token owner no longer exists")
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	reads      shared.CommandReads
}

func NewTokenValidator(jwtService *jwt.Service, uow shared.UnitOfWork) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		reads:      uow.CommandReads(),
	}
}

// ValidateToken checks the signature, then that the user still exists, is
// active, and has not changed their password since the token was issued.
// The role is taken from the stored user, not the token.
func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, errs.ErrUnauthorized)
	}

	u, err := t.reads.UserByID(ctx, claims.UserID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return uuid.Nil, "", ErrTokenOwner
		}
		return uuid.Nil, "", err
	}
	if !u.IsActive() {
		return uuid.Nil, "", ErrTokenOwner
	}
	if u.ChangedPasswordAfter(claims.IssuedAtTime()) {
		return uuid.Nil, "", ErrTokenRevoked
	}

	return u.ID(), u.Role(), nil
}

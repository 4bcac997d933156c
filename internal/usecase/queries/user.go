package queries

import (
	"context"

	"course-checkout/internal/infra"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound   = errs.NotFound("user not found")
	ErrUserInactive   = errs.Forbidden("user inactive")
	ErrCreditNotFound = errs.NotFound("No InCash found")
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type CreditReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CreditView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*CreditView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	GetMyCredit(ctx context.Context, userID uuid.UUID) (*CreditView, error)
	GetCredit(ctx context.Context, id uuid.UUID) (*CreditView, error)
}

type userQueriesImpl struct {
	users   UserReadStore
	credits CreditReadStore
	clock   clock.Clock
}

func NewUserQueries(users UserReadStore, credits CreditReadStore, clk clock.Clock) UserQueries {
	return &userQueriesImpl{
		users:   users,
		credits: credits,
		clock:   clk,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	user, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) GetMyCredit(ctx context.Context, userID uuid.UUID) (*CreditView, error) {
	return q.withExpiry(q.credits.FindByUserID(ctx, userID))
}

func (q *userQueriesImpl) GetCredit(ctx context.Context, id uuid.UUID) (*CreditView, error) {
	return q.withExpiry(q.credits.FindByID(ctx, id))
}

func (q *userQueriesImpl) withExpiry(v *CreditView, err error) (*CreditView, error) {
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCreditNotFound
		}
		return nil, err
	}
	v.Expired = v.ExpiryDate.Before(q.clock.Now())
	return v, nil
}

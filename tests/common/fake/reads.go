//go:build unit || e2e

package fake

import (
	"context"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/course"
	"course-checkout/internal/domain/credit"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

// reads serves CommandReads. Inside a transaction the lock is already held.
type reads struct {
	uow    *UnitOfWork
	locked bool
}

var _ shared.CommandReads = (*reads)(nil)

func (r *reads) view() (*state, func()) {
	if r.locked {
		return r.uow.st, func() {}
	}
	r.uow.mu.Lock()
	return r.uow.st, r.uow.mu.Unlock
}

func (r *reads) CourseByID(_ context.Context, id uuid.UUID) (*course.Course, error) {
	st, done := r.view()
	defer done()
	s, ok := st.courses[id]
	if !ok || !s.Active {
		return nil, notFound("course")
	}
	return courseFrom(s), nil
}

func (r *reads) CouponByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	st, done := r.view()
	defer done()
	for _, s := range st.coupons {
		if s.Code == code {
			return coupon.Reconstruct(s), nil
		}
	}
	return nil, notFound("coupon")
}

func (r *reads) AffiliateByCode(_ context.Context, code string) (*affiliate.Code, error) {
	st, done := r.view()
	defer done()
	for _, s := range st.affiliates {
		if s.Code == code {
			return affiliate.Reconstruct(s), nil
		}
	}
	return nil, notFound("affiliate code")
}

func (r *reads) CreditByUserID(_ context.Context, userID uuid.UUID) (*credit.StoredCredit, error) {
	st, done := r.view()
	defer done()
	for _, s := range st.credits {
		if s.UserID == userID {
			return credit.Reconstruct(s), nil
		}
	}
	return nil, notFound("stored credit")
}

func (r *reads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	st, done := r.view()
	defer done()
	s, ok := st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return user.Reconstruct(s), nil
}

func (r *reads) UserByEmail(_ context.Context, email string) (*user.User, error) {
	st, done := r.view()
	defer done()
	for _, s := range st.users {
		if s.Email == email {
			return user.Reconstruct(s), nil
		}
	}
	return nil, notFound("user")
}

func (r *reads) IsEnrolled(_ context.Context, userID, courseID uuid.UUID) (bool, error) {
	st, done := r.view()
	defer done()
	_, ok := st.enrollments[enrollmentKey{userID, courseID}]
	return ok, nil
}

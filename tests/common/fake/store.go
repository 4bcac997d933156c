//go:build unit || e2e

// Package fake holds an in-memory unit of work for command tests. It keeps
// snapshots rather than entity pointers so callers cannot mutate stored state
// without going through a repository, and rolls back on error.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/course"
	"course-checkout/internal/domain/credit"
	"course-checkout/internal/domain/manualtransaction"
	"course-checkout/internal/domain/review"
	"course-checkout/internal/domain/transaction"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/domain/webform"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type reviewRow struct {
	id, userID, courseID uuid.UUID
	rating               int
	comment              string
	approved             bool
	createdAt, updatedAt time.Time
}

type enrollmentKey struct{ userID, courseID uuid.UUID }

type state struct {
	courses      map[uuid.UUID]course.Snapshot
	coupons      map[uuid.UUID]coupon.Snapshot
	affiliates   map[uuid.UUID]affiliate.Snapshot
	credits      map[uuid.UUID]credit.Snapshot
	transactions map[uuid.UUID]transaction.Snapshot
	users        map[uuid.UUID]user.Snapshot
	reviews      map[uuid.UUID]reviewRow
	enrollments  map[enrollmentKey]uuid.UUID
	manualTxs    map[uuid.UUID]manualtransaction.Snapshot
	webForms     map[uuid.UUID]webform.Snapshot
	cart         map[enrollmentKey]time.Time
	couponUses   []shared.UsageRecord
	affUses      []shared.UsageRecord
	creditUses   []shared.UsageRecord
	rates        *shared.RateTable
}

func newState() *state {
	return &state{
		courses:      map[uuid.UUID]course.Snapshot{},
		coupons:      map[uuid.UUID]coupon.Snapshot{},
		affiliates:   map[uuid.UUID]affiliate.Snapshot{},
		credits:      map[uuid.UUID]credit.Snapshot{},
		transactions: map[uuid.UUID]transaction.Snapshot{},
		users:        map[uuid.UUID]user.Snapshot{},
		reviews:      map[uuid.UUID]reviewRow{},
		enrollments:  map[enrollmentKey]uuid.UUID{},
		manualTxs:    map[uuid.UUID]manualtransaction.Snapshot{},
		webForms:     map[uuid.UUID]webform.Snapshot{},
		cart:         map[enrollmentKey]time.Time{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.courses {
		c.courses[k] = v
	}
	for k, v := range s.coupons {
		c.coupons[k] = v
	}
	for k, v := range s.affiliates {
		c.affiliates[k] = v
	}
	for k, v := range s.credits {
		c.credits[k] = v
	}
	for k, v := range s.transactions {
		c.transactions[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.reviews {
		c.reviews[k] = v
	}
	for k, v := range s.enrollments {
		c.enrollments[k] = v
	}
	for k, v := range s.manualTxs {
		c.manualTxs[k] = v
	}
	for k, v := range s.webForms {
		c.webForms[k] = v
	}
	for k, v := range s.cart {
		c.cart[k] = v
	}
	c.couponUses = append(c.couponUses, s.couponUses...)
	c.affUses = append(c.affUses, s.affUses...)
	c.creditUses = append(c.creditUses, s.creditUses...)
	c.rates = s.rates
	return c
}

// UnitOfWork serializes every Within call, which is enough to exercise the
// conditional updates that guard against double settlement.
type UnitOfWork struct {
	mu sync.Mutex
	st *state

	// FailOn makes the named repository operation fail, e.g. "Enrollments.Enroll".
	FailOn map[string]error
	// WithinCalls counts Within invocations.
	WithinCalls int
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{st: newState(), FailOn: map[string]error{}}
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.WithinCalls++

	backup := u.st.clone()
	if err := fn(ctx, &tx{uow: u}); err != nil {
		u.st = backup
		return err
	}
	return nil
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &reads{uow: u, locked: false}
}

func (u *UnitOfWork) fail(op string) error {
	if err, ok := u.FailOn[op]; ok {
		return err
	}
	return nil
}

func notFound(what string) error {
	return errs.Mark(errs.New(what+" not found"), errs.ErrNotFound)
}

func duplicate(what string) error {
	return errs.Mark(errs.Mark(errs.New("duplicate "+what), errs.ErrDuplicate), errs.ErrConflict)
}

// ---- seeding and inspection, for test setup and assertions ----

func (u *UnitOfWork) lock() func() {
	u.mu.Lock()
	return u.mu.Unlock
}

func (u *UnitOfWork) PutCourse(c *course.Course) {
	defer u.lock()()
	u.st.courses[c.ID()] = courseSnapshot(c)
}

func (u *UnitOfWork) PutCoupon(c *coupon.Coupon) {
	defer u.lock()()
	u.st.coupons[c.ID()] = couponSnapshot(c)
}

func (u *UnitOfWork) PutAffiliate(a *affiliate.Code) {
	defer u.lock()()
	u.st.affiliates[a.ID()] = affiliateSnapshot(a)
}

func (u *UnitOfWork) PutCredit(c *credit.StoredCredit) {
	defer u.lock()()
	u.st.credits[c.ID()] = creditSnapshot(c)
}

func (u *UnitOfWork) PutUser(usr *user.User) {
	defer u.lock()()
	u.st.users[usr.ID()] = userSnapshot(usr)
}

func (u *UnitOfWork) PutTransaction(t *transaction.Transaction) {
	defer u.lock()()
	u.st.transactions[t.ID()] = t.Snapshot()
}

func (u *UnitOfWork) PutReview(r *review.Review) {
	defer u.lock()()
	u.st.reviews[r.ID()] = reviewSnapshot(r)
}

func (u *UnitOfWork) PutManualTransaction(t *manualtransaction.Transaction) {
	defer u.lock()()
	u.st.manualTxs[t.ID()] = t.Snapshot()
}

func (u *UnitOfWork) PutWebForm(f *webform.Form) {
	defer u.lock()()
	u.st.webForms[f.ID()] = f.Snapshot()
}

func (u *UnitOfWork) PutCartItem(userID, courseID uuid.UUID, at time.Time) {
	defer u.lock()()
	u.st.cart[enrollmentKey{userID, courseID}] = at
}

func (u *UnitOfWork) Enroll(userID, courseID, txID uuid.UUID) {
	defer u.lock()()
	u.st.enrollments[enrollmentKey{userID, courseID}] = txID
}

func (u *UnitOfWork) Course(id uuid.UUID) *course.Course {
	defer u.lock()()
	s, ok := u.st.courses[id]
	if !ok {
		return nil
	}
	return courseFrom(s)
}

func (u *UnitOfWork) Coupon(id uuid.UUID) *coupon.Coupon {
	defer u.lock()()
	s, ok := u.st.coupons[id]
	if !ok {
		return nil
	}
	return coupon.Reconstruct(s)
}

func (u *UnitOfWork) Affiliate(id uuid.UUID) *affiliate.Code {
	defer u.lock()()
	s, ok := u.st.affiliates[id]
	if !ok {
		return nil
	}
	return affiliate.Reconstruct(s)
}

func (u *UnitOfWork) Credit(id uuid.UUID) *credit.StoredCredit {
	defer u.lock()()
	s, ok := u.st.credits[id]
	if !ok {
		return nil
	}
	return credit.Reconstruct(s)
}

func (u *UnitOfWork) User(id uuid.UUID) *user.User {
	defer u.lock()()
	s, ok := u.st.users[id]
	if !ok {
		return nil
	}
	return user.Reconstruct(s)
}

func (u *UnitOfWork) Transactions() []*transaction.Transaction {
	defer u.lock()()
	out := make([]*transaction.Transaction, 0, len(u.st.transactions))
	for _, s := range u.st.transactions {
		out = append(out, transaction.Reconstruct(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (u *UnitOfWork) Review(id uuid.UUID) *review.Review {
	defer u.lock()()
	r, ok := u.st.reviews[id]
	if !ok {
		return nil
	}
	return r.entity()
}

func (u *UnitOfWork) IsEnrolled(userID, courseID uuid.UUID) bool {
	defer u.lock()()
	_, ok := u.st.enrollments[enrollmentKey{userID, courseID}]
	return ok
}

func (u *UnitOfWork) ManualTransaction(id uuid.UUID) *manualtransaction.Transaction {
	defer u.lock()()
	s, ok := u.st.manualTxs[id]
	if !ok {
		return nil
	}
	return manualtransaction.Reconstruct(s)
}

func (u *UnitOfWork) WebForm(id uuid.UUID) *webform.Form {
	defer u.lock()()
	s, ok := u.st.webForms[id]
	if !ok {
		return nil
	}
	return webform.Reconstruct(s)
}

func (u *UnitOfWork) InCart(userID, courseID uuid.UUID) bool {
	defer u.lock()()
	_, ok := u.st.cart[enrollmentKey{userID, courseID}]
	return ok
}

func (u *UnitOfWork) CouponUsages() []shared.UsageRecord {
	defer u.lock()()
	return append([]shared.UsageRecord(nil), u.st.couponUses...)
}

func (u *UnitOfWork) AffiliateUsages() []shared.UsageRecord {
	defer u.lock()()
	return append([]shared.UsageRecord(nil), u.st.affUses...)
}

func (u *UnitOfWork) CreditUsages() []shared.UsageRecord {
	defer u.lock()()
	return append([]shared.UsageRecord(nil), u.st.creditUses...)
}

func (u *UnitOfWork) Rates() *shared.RateTable {
	defer u.lock()()
	return u.st.rates
}

// ---- snapshots ----

func courseSnapshot(c *course.Course) course.Snapshot {
	var d *course.Discount
	if c.Discount() != nil {
		cp := *c.Discount()
		d = &cp
	}
	return course.Snapshot{
		ID:            c.ID(),
		Name:          c.Name(),
		Slug:          c.Slug(),
		Description:   c.Description(),
		Category:      c.Category(),
		Price:         c.Price(),
		Discount:      d,
		TotalSold:     c.TotalSold(),
		Rating:        c.Rating(),
		StripePriceID: c.StripePriceID(),
		Published:     c.IsPublished(),
		Active:        c.IsActive(),
		CreatedAt:     c.CreatedAt(),
		UpdatedAt:     c.UpdatedAt(),
	}
}

func couponSnapshot(c *coupon.Coupon) coupon.Snapshot {
	return coupon.Snapshot{
		ID:          c.ID(),
		Code:        c.Code().String(),
		Percentage:  c.Percentage().Decimal(),
		MaxUseTimes: c.MaxUseTimes(),
		TimesUsed:   c.TimesUsed(),
		StartsAt:    c.StartsAt(),
		ExpiresAt:   c.ExpiresAt(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func affiliateSnapshot(a *affiliate.Code) affiliate.Snapshot {
	return affiliate.Snapshot{
		ID:             a.ID(),
		Code:           a.Code().String(),
		DiscountAmount: a.DiscountAmount(),
		MaxUseTimes:    a.MaxUseTimes(),
		TimesUsed:      a.TimesUsed(),
		StartsAt:       a.StartsAt(),
		ExpiresAt:      a.ExpiresAt(),
		OwnerID:        a.OwnerID(),
		Active:         a.IsActive(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
}

func creditSnapshot(c *credit.StoredCredit) credit.Snapshot {
	return credit.Snapshot{
		ID:        c.ID(),
		UserID:    c.UserID(),
		Amount:    c.Amount(),
		StartsAt:  c.StartsAt(),
		ExpiresAt: c.ExpiresAt(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func userSnapshot(u *user.User) user.Snapshot {
	return user.Snapshot{
		ID:                u.ID(),
		Name:              u.Name(),
		Email:             u.Email().Value(),
		PasswordHash:      u.PasswordHash(),
		Role:              u.Role().String(),
		Verified:          u.IsVerified(),
		VerificationToken: u.VerificationToken(),
		PasswordChangedAt: u.PasswordChangedAt(),
		CreditID:          u.CreditID(),
		AffiliateCodeID:   u.AffiliateCodeID(),
		Active:            u.IsActive(),
		CreatedAt:         u.CreatedAt(),
		UpdatedAt:         u.UpdatedAt(),
	}
}

func reviewSnapshot(r *review.Review) reviewRow {
	return reviewRow{
		id:        r.ID(),
		userID:    r.UserID(),
		courseID:  r.CourseID(),
		rating:    r.Rating().Value(),
		comment:   r.Comment().String(),
		approved:  r.IsApproved(),
		createdAt: r.CreatedAt(),
		updatedAt: r.UpdatedAt(),
	}
}

func (r reviewRow) entity() *review.Review {
	return review.Reconstruct(r.id, r.userID, r.courseID, r.rating, r.comment, r.approved, r.createdAt, r.updatedAt)
}

// courseFrom rebuilds a course without sharing the stored discount.
func courseFrom(s course.Snapshot) *course.Course {
	if s.Discount != nil {
		d := *s.Discount
		s.Discount = &d
	}
	return course.Reconstruct(s)
}

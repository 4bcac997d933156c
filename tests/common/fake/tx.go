//go:build unit || e2e

package fake

import (
	"context"
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
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// tx operates on the unit of work state directly. The caller already holds
// the unit of work lock.
type tx struct {
	uow *UnitOfWork
}

var _ shared.Tx = (*tx)(nil)

func (t *tx) st() *state { return t.uow.st }

func (t *tx) Courses() shared.CourseRepository             { return courses{t} }
func (t *tx) Coupons() shared.CouponRepository             { return coupons{t} }
func (t *tx) Affiliates() shared.AffiliateRepository       { return affiliates{t} }
func (t *tx) Credits() shared.CreditRepository             { return credits{t} }
func (t *tx) Transactions() shared.TransactionRepository   { return transactions{t} }
func (t *tx) Enrollments() shared.EnrollmentRepository     { return enrollments{t} }
func (t *tx) Users() shared.UserRepository                 { return users{t} }
func (t *tx) Reviews() shared.ReviewRepository             { return reviews{t} }
func (t *tx) ExchangeRates() shared.ExchangeRateRepository { return rates{t} }
func (t *tx) ManualTransactions() shared.ManualTransactionRepository {
	return manualTxs{t}
}
func (t *tx) WebForms() shared.WebFormRepository { return webForms{t} }
func (t *tx) Carts() shared.CartRepository       { return carts{t} }
func (t *tx) Reads() shared.CommandReads         { return &reads{uow: t.uow, locked: true} }

func (t *tx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	backup := t.uow.st.clone()
	if err := fn(ctx, t); err != nil {
		t.uow.st = backup
		return err
	}
	return nil
}

// ---- courses ----

type courses struct{ t *tx }

func (r courses) Create(_ context.Context, c *course.Course) error {
	if err := r.t.uow.fail("Courses.Create"); err != nil {
		return err
	}
	for _, existing := range r.t.st().courses {
		if existing.Slug == c.Slug() {
			return duplicate("course slug")
		}
	}
	r.t.st().courses[c.ID()] = courseSnapshot(c)
	return nil
}

func (r courses) Update(_ context.Context, c *course.Course) error {
	if _, ok := r.t.st().courses[c.ID()]; !ok {
		return notFound("course")
	}
	r.t.st().courses[c.ID()] = courseSnapshot(c)
	return nil
}

func (r courses) FindByID(_ context.Context, id uuid.UUID, includeInactive bool) (*course.Course, error) {
	s, ok := r.t.st().courses[id]
	if !ok || (!s.Active && !includeInactive) {
		return nil, notFound("course")
	}
	return courseFrom(s), nil
}

func (r courses) LockWithDiscount(_ context.Context) ([]*course.Course, error) {
	if err := r.t.uow.fail("Courses.LockWithDiscount"); err != nil {
		return nil, err
	}
	var out []*course.Course
	for _, s := range r.t.st().courses {
		if s.Active && s.Discount != nil {
			out = append(out, courseFrom(s))
		}
	}
	return out, nil
}

func (r courses) IncrementSales(_ context.Context, id uuid.UUID) error {
	if err := r.t.uow.fail("Courses.IncrementSales"); err != nil {
		return err
	}
	s, ok := r.t.st().courses[id]
	if !ok {
		return notFound("course")
	}
	s.TotalSold++
	r.t.st().courses[id] = s
	return nil
}

func (r courses) SetRating(_ context.Context, id uuid.UUID, rating decimal.Decimal) error {
	s, ok := r.t.st().courses[id]
	if !ok {
		return notFound("course")
	}
	s.Rating = rating
	r.t.st().courses[id] = s
	return nil
}

// ---- coupons ----

type coupons struct{ t *tx }

func (r coupons) Create(_ context.Context, c *coupon.Coupon) error {
	for _, existing := range r.t.st().coupons {
		if existing.Code == c.Code().String() {
			return duplicate("coupon code")
		}
	}
	r.t.st().coupons[c.ID()] = couponSnapshot(c)
	return nil
}

func (r coupons) Update(_ context.Context, c *coupon.Coupon) error {
	if _, ok := r.t.st().coupons[c.ID()]; !ok {
		return notFound("coupon")
	}
	for id, existing := range r.t.st().coupons {
		if id != c.ID() && existing.Code == c.Code().String() {
			return duplicate("coupon code")
		}
	}
	r.t.st().coupons[c.ID()] = couponSnapshot(c)
	return nil
}

func (r coupons) FindByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	s, ok := r.t.st().coupons[id]
	if !ok {
		return nil, notFound("coupon")
	}
	return coupon.Reconstruct(s), nil
}

func (r coupons) IncrementUsage(_ context.Context, id uuid.UUID) (bool, error) {
	if err := r.t.uow.fail("Coupons.IncrementUsage"); err != nil {
		return false, err
	}
	s, ok := r.t.st().coupons[id]
	if !ok || s.TimesUsed >= s.MaxUseTimes {
		return false, nil
	}
	s.TimesUsed++
	r.t.st().coupons[id] = s
	return true, nil
}

func (r coupons) RecordUsage(_ context.Context, u shared.UsageRecord) error {
	r.t.st().couponUses = append(r.t.st().couponUses, u)
	return nil
}

// ---- affiliate codes ----

type affiliates struct{ t *tx }

func (r affiliates) Create(_ context.Context, a *affiliate.Code) error {
	for _, existing := range r.t.st().affiliates {
		if existing.Code == a.Code().String() {
			return duplicate("affiliate code")
		}
	}
	r.t.st().affiliates[a.ID()] = affiliateSnapshot(a)
	return nil
}

func (r affiliates) Update(_ context.Context, a *affiliate.Code) error {
	if _, ok := r.t.st().affiliates[a.ID()]; !ok {
		return notFound("affiliate code")
	}
	r.t.st().affiliates[a.ID()] = affiliateSnapshot(a)
	return nil
}

func (r affiliates) FindByID(_ context.Context, id uuid.UUID) (*affiliate.Code, error) {
	s, ok := r.t.st().affiliates[id]
	if !ok {
		return nil, notFound("affiliate code")
	}
	return affiliate.Reconstruct(s), nil
}

func (r affiliates) IncrementUsage(_ context.Context, id uuid.UUID) (bool, error) {
	if err := r.t.uow.fail("Affiliates.IncrementUsage"); err != nil {
		return false, err
	}
	s, ok := r.t.st().affiliates[id]
	if !ok || s.TimesUsed >= s.MaxUseTimes {
		return false, nil
	}
	s.TimesUsed++
	r.t.st().affiliates[id] = s
	return true, nil
}

func (r affiliates) RecordUsage(_ context.Context, u shared.UsageRecord) error {
	r.t.st().affUses = append(r.t.st().affUses, u)
	return nil
}

// ---- stored credits ----

type credits struct{ t *tx }

func (r credits) Create(_ context.Context, c *credit.StoredCredit) error {
	for _, existing := range r.t.st().credits {
		if existing.UserID == c.UserID() {
			return duplicate("stored credit")
		}
	}
	r.t.st().credits[c.ID()] = creditSnapshot(c)
	return nil
}

func (r credits) Debit(_ context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	if err := r.t.uow.fail("Credits.Debit"); err != nil {
		return false, err
	}
	s, ok := r.t.st().credits[id]
	if !ok || s.Amount.LessThan(amount) {
		return false, nil
	}
	s.Amount = s.Amount.Sub(amount)
	r.t.st().credits[id] = s
	return true, nil
}

func (r credits) RecordUsage(_ context.Context, u shared.UsageRecord) error {
	r.t.st().creditUses = append(r.t.st().creditUses, u)
	return nil
}

// ---- transactions ----

type transactions struct{ t *tx }

func (r transactions) Create(_ context.Context, t *transaction.Transaction) error {
	if err := r.t.uow.fail("Transactions.Create"); err != nil {
		return err
	}
	for _, existing := range r.t.st().transactions {
		if existing.Gateway == t.Gateway() && existing.ProviderRef == t.ProviderRef() {
			return duplicate("provider reference")
		}
	}
	r.t.st().transactions[t.ID()] = t.Snapshot()
	return nil
}

func (r transactions) FindByProviderRef(_ context.Context, gateway transaction.Gateway, ref string) (*transaction.Transaction, error) {
	for _, s := range r.t.st().transactions {
		if s.Gateway == gateway && s.ProviderRef == ref {
			return transaction.Reconstruct(s), nil
		}
	}
	return nil, notFound("transaction")
}

func (r transactions) MarkPaid(_ context.Context, id uuid.UUID, paymentRef string, paidAt time.Time) (*transaction.Transaction, error) {
	s, ok := r.t.st().transactions[id]
	if !ok || s.IsPaid {
		return nil, nil
	}
	at := paidAt
	s.IsPaid = true
	s.PaymentRef = paymentRef
	s.PaidAt = &at
	s.UpdatedAt = paidAt
	r.t.st().transactions[id] = s
	return transaction.Reconstruct(s), nil
}

// ---- enrollments ----

type enrollments struct{ t *tx }

func (r enrollments) Enroll(_ context.Context, userID, courseID, transactionID uuid.UUID, _ time.Time) error {
	if err := r.t.uow.fail("Enrollments.Enroll"); err != nil {
		return err
	}
	key := enrollmentKey{userID, courseID}
	if _, ok := r.t.st().enrollments[key]; !ok {
		r.t.st().enrollments[key] = transactionID
	}
	return nil
}

// ---- users ----

type users struct{ t *tx }

func (r users) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.t.st().users {
		if existing.Email == u.Email().Value() {
			return duplicate("email")
		}
	}
	r.t.st().users[u.ID()] = userSnapshot(u)
	return nil
}

func (r users) Update(_ context.Context, u *user.User) error {
	if _, ok := r.t.st().users[u.ID()]; !ok {
		return notFound("user")
	}
	r.t.st().users[u.ID()] = userSnapshot(u)
	return nil
}

func (r users) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s, ok := r.t.st().users[id]
	if !ok {
		return nil, notFound("user")
	}
	return user.Reconstruct(s), nil
}

func (r users) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, s := range r.t.st().users {
		if s.Email == email {
			return user.Reconstruct(s), nil
		}
	}
	return nil, notFound("user")
}

func (r users) FindByVerificationToken(_ context.Context, hashedToken string) (*user.User, error) {
	for _, s := range r.t.st().users {
		if s.VerificationToken != nil && *s.VerificationToken == hashedToken {
			return user.Reconstruct(s), nil
		}
	}
	return nil, notFound("user")
}

// ---- reviews ----

type reviews struct{ t *tx }

func (r reviews) Create(_ context.Context, rev *review.Review) error {
	for _, existing := range r.t.st().reviews {
		if existing.userID == rev.UserID() && existing.courseID == rev.CourseID() {
			return duplicate("review")
		}
	}
	r.t.st().reviews[rev.ID()] = reviewSnapshot(rev)
	return nil
}

func (r reviews) Update(_ context.Context, rev *review.Review) error {
	if _, ok := r.t.st().reviews[rev.ID()]; !ok {
		return notFound("review")
	}
	r.t.st().reviews[rev.ID()] = reviewSnapshot(rev)
	return nil
}

func (r reviews) FindByID(_ context.Context, id uuid.UUID) (*review.Review, error) {
	row, ok := r.t.st().reviews[id]
	if !ok {
		return nil, notFound("review")
	}
	return row.entity(), nil
}

func (r reviews) ApprovedRatings(_ context.Context, courseID uuid.UUID) ([]int, error) {
	var out []int
	for _, row := range r.t.st().reviews {
		if row.courseID == courseID && row.approved {
			out = append(out, row.rating)
		}
	}
	return out, nil
}

// ---- exchange rates ----

type rates struct{ t *tx }

func (r rates) Upsert(_ context.Context, table shared.RateTable) error {
	if err := r.t.uow.fail("ExchangeRates.Upsert"); err != nil {
		return err
	}
	cp := table
	r.t.st().rates = &cp
	return nil
}

func (r rates) Get(_ context.Context) (*shared.RateTable, error) {
	if r.t.st().rates == nil {
		return nil, notFound("exchange rates")
	}
	cp := *r.t.st().rates
	return &cp, nil
}

// ---- manual transactions ----

type manualTxs struct{ t *tx }

func (r manualTxs) Create(_ context.Context, m *manualtransaction.Transaction) error {
	if err := r.t.uow.fail("ManualTransactions.Create"); err != nil {
		return err
	}
	r.t.st().manualTxs[m.ID()] = m.Snapshot()
	return nil
}

func (r manualTxs) Update(_ context.Context, m *manualtransaction.Transaction) error {
	if _, ok := r.t.st().manualTxs[m.ID()]; !ok {
		return notFound("manual transaction")
	}
	r.t.st().manualTxs[m.ID()] = m.Snapshot()
	return nil
}

func (r manualTxs) FindByID(_ context.Context, id uuid.UUID) (*manualtransaction.Transaction, error) {
	s, ok := r.t.st().manualTxs[id]
	if !ok {
		return nil, notFound("manual transaction")
	}
	return manualtransaction.Reconstruct(s), nil
}

func (r manualTxs) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.t.st().manualTxs[id]; !ok {
		return notFound("manual transaction")
	}
	delete(r.t.st().manualTxs, id)
	return nil
}

// ---- web forms ----

type webForms struct{ t *tx }

func (r webForms) Create(_ context.Context, f *webform.Form) error {
	if err := r.t.uow.fail("WebForms.Create"); err != nil {
		return err
	}
	r.t.st().webForms[f.ID()] = f.Snapshot()
	return nil
}

func (r webForms) Update(_ context.Context, f *webform.Form) error {
	if _, ok := r.t.st().webForms[f.ID()]; !ok {
		return notFound("web form")
	}
	r.t.st().webForms[f.ID()] = f.Snapshot()
	return nil
}

func (r webForms) FindByID(_ context.Context, id uuid.UUID) (*webform.Form, error) {
	s, ok := r.t.st().webForms[id]
	if !ok {
		return nil, notFound("web form")
	}
	return webform.Reconstruct(s), nil
}

func (r webForms) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.t.st().webForms[id]; !ok {
		return notFound("web form")
	}
	delete(r.t.st().webForms, id)
	return nil
}

// ---- cart ----

type carts struct{ t *tx }

func (r carts) Add(_ context.Context, userID, courseID uuid.UUID, at time.Time) (bool, error) {
	if err := r.t.uow.fail("Carts.Add"); err != nil {
		return false, err
	}
	key := enrollmentKey{userID, courseID}
	if _, ok := r.t.st().cart[key]; ok {
		return false, nil
	}
	r.t.st().cart[key] = at
	return true, nil
}

func (r carts) Remove(_ context.Context, userID, courseID uuid.UUID) (bool, error) {
	key := enrollmentKey{userID, courseID}
	if _, ok := r.t.st().cart[key]; !ok {
		return false, nil
	}
	delete(r.t.st().cart, key)
	return true, nil
}

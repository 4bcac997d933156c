package shared

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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within runs fn in a read-committed transaction, retrying serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction, for validation before a write.
	CommandReads() CommandReads
}

type Tx interface {
	Courses() CourseRepository
	Coupons() CouponRepository
	Affiliates() AffiliateRepository
	Credits() CreditRepository
	Transactions() TransactionRepository
	Enrollments() EnrollmentRepository
	Users() UserRepository
	Reviews() ReviewRepository
	ExchangeRates() ExchangeRateRepository
	ManualTransactions() ManualTransactionRepository
	WebForms() WebFormRepository
	Carts() CartRepository
	Reads() CommandReads
	// Savepoint runs fn in a nested transaction. A failure inside fn rolls back
	// only the savepoint and the outer transaction stays usable.
	Savepoint(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type CommandReads interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*course.Course, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	AffiliateByCode(ctx context.Context, code string) (*affiliate.Code, error)
	CreditByUserID(ctx context.Context, userID uuid.UUID) (*credit.StoredCredit, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
}

type CourseRepository interface {
	Create(ctx context.Context, c *course.Course) error
	Update(ctx context.Context, c *course.Course) error
	FindByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*course.Course, error)
	// LockWithDiscount returns every active course carrying a discount, locked for update.
	LockWithDiscount(ctx context.Context) ([]*course.Course, error)
	IncrementSales(ctx context.Context, id uuid.UUID) error
	SetRating(ctx context.Context, id uuid.UUID, rating decimal.Decimal) error
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	Update(ctx context.Context, c *coupon.Coupon) error
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	// IncrementUsage bumps the counter only while it is below the cap and
	// reports whether a row was updated.
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
	RecordUsage(ctx context.Context, u UsageRecord) error
}

type AffiliateRepository interface {
	Create(ctx context.Context, a *affiliate.Code) error
	Update(ctx context.Context, a *affiliate.Code) error
	FindByID(ctx context.Context, id uuid.UUID) (*affiliate.Code, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
	RecordUsage(ctx context.Context, u UsageRecord) error
}

type CreditRepository interface {
	Create(ctx context.Context, c *credit.StoredCredit) error
	// Debit subtracts amount only when the balance covers it and reports
	// whether a row was updated.
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error)
	RecordUsage(ctx context.Context, u UsageRecord) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *transaction.Transaction) error
	FindByProviderRef(ctx context.Context, gateway transaction.Gateway, ref string) (*transaction.Transaction, error)
	// MarkPaid flips an unpaid transaction to paid and returns it. It returns
	// nil with no error when the transaction was already paid.
	MarkPaid(ctx context.Context, id uuid.UUID, paymentRef string, paidAt time.Time) (*transaction.Transaction, error)
}

type EnrollmentRepository interface {
	// Enroll is a no-op when the user is already enrolled.
	Enroll(ctx context.Context, userID, courseID, transactionID uuid.UUID, at time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByVerificationToken(ctx context.Context, hashedToken string) (*user.User, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	Update(ctx context.Context, r *review.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	ApprovedRatings(ctx context.Context, courseID uuid.UUID) ([]int, error)
}

type ExchangeRateRepository interface {
	Upsert(ctx context.Context, table RateTable) error
	Get(ctx context.Context) (*RateTable, error)
}

type ManualTransactionRepository interface {
	Create(ctx context.Context, t *manualtransaction.Transaction) error
	Update(ctx context.Context, t *manualtransaction.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*manualtransaction.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type WebFormRepository interface {
	Create(ctx context.Context, f *webform.Form) error
	Update(ctx context.Context, f *webform.Form) error
	FindByID(ctx context.Context, id uuid.UUID) (*webform.Form, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CartRepository interface {
	// Add reports false when the course was already in the cart.
	Add(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (bool, error)
	// Remove reports false when the course was not in the cart.
	Remove(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
}

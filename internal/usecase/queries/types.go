package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourseView struct {
	ID                uuid.UUID        `json:"id" db:"id"`
	Name              string           `json:"name" db:"name"`
	Slug              string           `json:"slug" db:"slug"`
	Description       string           `json:"description" db:"description"`
	Category          string           `json:"category" db:"category"`
	Price             decimal.Decimal  `json:"price" db:"price"`
	DiscountAmount    *decimal.Decimal `json:"discountAmount,omitempty" db:"discount_amount"`
	DiscountStartDate *time.Time       `json:"discountStartDate,omitempty" db:"discount_starts_at"`
	DiscountEndDate   *time.Time       `json:"discountEndDate,omitempty" db:"discount_ends_at"`
	DiscountApplied   bool             `json:"discountApplied" db:"discount_applied"`
	TotalSold         int              `json:"totalSold" db:"total_sold"`
	Rating            decimal.Decimal  `json:"rating" db:"rating"`
	StripePriceID     string           `json:"stripePriceId,omitempty" db:"stripe_price_id"`
	IsPublished       bool             `json:"isPublished" db:"is_published"`
	Active            bool             `json:"active" db:"active"`
	CreatedAt         time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time        `json:"updatedAt" db:"updated_at"`
}

type TransactionView struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	UserID          uuid.UUID        `json:"userId" db:"user_id"`
	UserEmail       string           `json:"userEmail" db:"user_email"`
	CourseID        uuid.UUID        `json:"courseId" db:"course_id"`
	CourseName      string           `json:"courseName" db:"course_name"`
	Gateway         string           `json:"gateway" db:"gateway"`
	Currency        string           `json:"currency" db:"currency"`
	BasePrice       decimal.Decimal  `json:"basePrice" db:"base_price"`
	CheckoutPrice   decimal.Decimal  `json:"checkoutPrice" db:"checkout_price"`
	CouponID        *uuid.UUID       `json:"couponId,omitempty" db:"coupon_id"`
	CouponCode      *string          `json:"couponCode,omitempty" db:"coupon_code"`
	CouponAmount    *decimal.Decimal `json:"couponAmount,omitempty" db:"coupon_amount"`
	AffiliateCodeID *uuid.UUID       `json:"affiliateCodeId,omitempty" db:"affiliate_code_id"`
	AffiliateCode   *string          `json:"affiliateCode,omitempty" db:"affiliate_code"`
	AffiliateAmount *decimal.Decimal `json:"affiliateAmount,omitempty" db:"affiliate_amount"`
	CreditID        *uuid.UUID       `json:"inCashId,omitempty" db:"credit_id"`
	CreditAmount    *decimal.Decimal `json:"inCashAmount,omitempty" db:"credit_amount"`
	ProviderRef     string           `json:"providerRef" db:"provider_ref"`
	PaymentRef      *string          `json:"paymentRef,omitempty" db:"payment_ref"`
	IsPaid          bool             `json:"isPaid" db:"is_paid"`
	PaidAt          *time.Time       `json:"paidAt,omitempty" db:"paid_at"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
}

type CouponView struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	Code               string          `json:"code" db:"code"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage" db:"discount_percentage"`
	MaxUseTimes        int             `json:"maxUseTimes" db:"max_use_times"`
	TimesUsed          int             `json:"timesUsed" db:"times_used"`
	StartDate          time.Time       `json:"startDate" db:"starts_at"`
	ExpiryDate         time.Time       `json:"expiryDate" db:"expires_at"`
	Active             bool            `json:"active" db:"active"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" db:"updated_at"`
}

type AffiliateCodeView struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Code           string          `json:"code" db:"code"`
	DiscountAmount decimal.Decimal `json:"discountAmount" db:"discount_amount"`
	MaxUseTimes    int             `json:"maxUseTimes" db:"max_use_times"`
	TimesUsed      int             `json:"timesUsed" db:"times_used"`
	StartDate      time.Time       `json:"startDate" db:"starts_at"`
	ExpiryDate     time.Time       `json:"expiryDate" db:"expires_at"`
	OwnerID        *uuid.UUID      `json:"ownerId,omitempty" db:"owner_id"`
	Active         bool            `json:"active" db:"active"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CourseID  uuid.UUID `json:"courseId" db:"course_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	UserName  string    `json:"userName" db:"user_name"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	Approved  bool      `json:"approved" db:"approved"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type UserView struct {
	ID       uuid.UUID  `json:"id" db:"id"`
	Name     string     `json:"name" db:"name"`
	Email    string     `json:"email" db:"email"`
	Role     string     `json:"role" db:"role"`
	Verified bool       `json:"verified" db:"verified"`
	CreditID *uuid.UUID `json:"inCashId,omitempty" db:"credit_id"`
	IsActive bool       `json:"active" db:"active"`

	// AffiliateCodeID is set when the user owns an affiliate code.
	AffiliateCodeID *uuid.UUID `json:"affiliateCodeId,omitempty" db:"affiliate_code_id"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
}

type CreditView struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"userId" db:"user_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	StartDate  time.Time       `json:"startDate" db:"starts_at"`
	ExpiryDate time.Time       `json:"expiryDate" db:"expires_at"`
	Expired    bool            `json:"expired" db:"-"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}

type ManualTransactionView struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	UserName       string           `json:"userName" db:"user_name"`
	UserEmail      string           `json:"userEmail" db:"user_email"`
	UserPhone      string           `json:"userPhoneNumber" db:"user_phone"`
	CourseName     string           `json:"courseName" db:"course_name"`
	Gateway        string           `json:"paymentGateway" db:"gateway"`
	ProviderRef    string           `json:"transactionId" db:"provider_ref"`
	Currency       string           `json:"transactionCurrency" db:"currency"`
	Amount         decimal.Decimal  `json:"transactionAmount" db:"amount"`
	TransactedAt   time.Time        `json:"transactionDate" db:"transacted_at"`
	Remarks        string           `json:"transactionRemarks" db:"remarks"`
	Comment        string           `json:"comment" db:"comment"`
	IsPaid         bool             `json:"isPaid" db:"is_paid"`
	CouponCode     *string          `json:"couponCode,omitempty" db:"coupon_code"`
	CouponDiscount *decimal.Decimal `json:"couponDiscount,omitempty" db:"coupon_discount"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time        `json:"updatedAt" db:"updated_at"`
}

type WebFormView struct {
	ID                    uuid.UUID `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	Email                 string    `json:"email" db:"email"`
	Phone                 string    `json:"phone" db:"phone"`
	FormType              string    `json:"formType" db:"form_type"`
	BookDemoCourse        *string   `json:"bookDemoCourse,omitempty" db:"book_demo_course"`
	InquiryDescription    *string   `json:"inquiryDescription,omitempty" db:"inquiry_description"`
	RequestCourseTopic    *string   `json:"requestCourseTopic,omitempty" db:"request_course_topic"`
	ContactUsTopic        *string   `json:"contactUsTopic,omitempty" db:"contact_us_topic"`
	ServerCloud           *string   `json:"requestServerCloudServer,omitempty" db:"server_cloud"`
	ServerDuration        *string   `json:"requestServerDuration,omitempty" db:"server_duration"`
	InstructorCountry     *string   `json:"becomeInstructorCountry,omitempty" db:"instructor_country"`
	InstructorLinkedin    *string   `json:"becomeInstructorLinkedin,omitempty" db:"instructor_linkedin"`
	InstructorDescription *string   `json:"becomeInstructorDescription,omitempty" db:"instructor_description"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time `json:"updatedAt" db:"updated_at"`
}

type CartItemView struct {
	CourseID   uuid.UUID       `json:"courseId" db:"course_id"`
	CourseName string          `json:"courseName" db:"course_name"`
	Slug       string          `json:"slug" db:"slug"`
	Price      decimal.Decimal `json:"price" db:"price"`
	AddedAt    time.Time       `json:"addedAt" db:"added_at"`
}

type StatsCounts struct {
	Users                 int64 `json:"numUsers" db:"num_users"`
	ManualTransactions    int64 `json:"numManualTransactions" db:"num_manual_transactions"`
	Transactions          int64 `json:"numTransactions" db:"num_transactions"`
	Coupons               int64 `json:"numCoupons" db:"num_coupons"`
	Affiliates            int64 `json:"numAffiliates" db:"num_affiliates"`
	Courses               int64 `json:"numCourses" db:"num_courses"`
	Admins                int64 `json:"numAdmins" db:"num_admins"`
	BecomeInstructorForms int64 `json:"numBecomeInstructorForms" db:"num_become_instructor_forms"`
}

// Bucket counts rows created in the period starting at Start.
type Bucket struct {
	Start time.Time `json:"start" db:"start"`
	Count int64     `json:"count" db:"count"`
}

type StatsView struct {
	StatsCounts
	WeeklyUserStats        []Bucket `json:"weeklyUserStats"`
	MonthlyUserStats       []Bucket `json:"monthlyUserStats"`
	WeeklyInstructorStats  []Bucket `json:"weeklyInstructorStats"`
	MonthlyInstructorStats []Bucket `json:"monthlyInstructorStats"`
}

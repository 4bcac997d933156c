package course

import (
	"strings"
	"time"

	"course-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName     = errs.Validation("course name is required")
	ErrNegativePrice   = errs.Validation("price cannot be negative")
	ErrInvalidRating   = errs.Validation("rating must be between 0 and 5")
	ErrCourseNotFound  = errs.NotFound("course not found")
	ErrNotPurchasable  = errs.Validation("course is not available for purchase")
	ErrNoStripePriceID = errs.Validation("course has no stripe price configured")
)

var maxRating = decimal.NewFromInt(5)

type Course struct {
	id            uuid.UUID
	name          string
	slug          string
	description   string
	category      string
	price         decimal.Decimal
	discount      *Discount
	totalSold     int
	rating        decimal.Decimal
	stripePriceID string
	published     bool
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

type Params struct {
	Name          string
	Slug          string
	Description   string
	Category      string
	Price         decimal.Decimal
	Discount      *Discount
	StripePriceID string
	Published     bool
}

func NewCourse(p Params, now time.Time) (*Course, error) {
	c := &Course{
		id:        uuid.New(),
		active:    true,
		createdAt: now,
		updatedAt: now,
		rating:    decimal.Zero,
	}
	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the editable attributes. Sales and rating are owned by
// settlement and review moderation and are never touched here.
func (c *Course) Update(p Params, now time.Time) error {
	if err := c.apply(p); err != nil {
		return err
	}
	c.updatedAt = now
	return nil
}

func (c *Course) apply(p Params) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrInvalidName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Discount != nil {
		if err := p.Discount.validate(); err != nil {
			return err
		}
	}
	c.name = name
	c.slug = strings.TrimSpace(p.Slug)
	if c.slug == "" {
		c.slug = slugify(name)
	}
	c.description = strings.TrimSpace(p.Description)
	c.category = strings.TrimSpace(p.Category)
	c.price = p.Price
	c.discount = p.Discount
	c.stripePriceID = strings.TrimSpace(p.StripePriceID)
	c.published = p.Published
	return nil
}

// CheckPurchasable rejects courses a buyer must not be able to check out.
func (c *Course) CheckPurchasable() error {
	if !c.active || !c.published {
		return ErrNotPurchasable
	}
	return nil
}

func (c *Course) Deactivate(now time.Time) {
	c.active = false
	c.updatedAt = now
}

func (c *Course) SetRating(r decimal.Decimal) error {
	if r.IsNegative() || r.GreaterThan(maxRating) {
		return ErrInvalidRating
	}
	c.rating = r
	return nil
}

type Snapshot struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	Description   string
	Category      string
	Price         decimal.Decimal
	Discount      *Discount
	TotalSold     int
	Rating        decimal.Decimal
	StripePriceID string
	Published     bool
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func Reconstruct(s Snapshot) *Course {
	return &Course{
		id:            s.ID,
		name:          s.Name,
		slug:          s.Slug,
		description:   s.Description,
		category:      s.Category,
		price:         s.Price,
		discount:      s.Discount,
		totalSold:     s.TotalSold,
		rating:        s.Rating,
		stripePriceID: s.StripePriceID,
		published:     s.Published,
		active:        s.Active,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
	}
}

func (c *Course) ID() uuid.UUID           { return c.id }
func (c *Course) Name() string            { return c.name }
func (c *Course) Slug() string            { return c.slug }
func (c *Course) Description() string     { return c.description }
func (c *Course) Category() string        { return c.category }
func (c *Course) Price() decimal.Decimal  { return c.price }
func (c *Course) Discount() *Discount     { return c.discount }
func (c *Course) TotalSold() int          { return c.totalSold }
func (c *Course) Rating() decimal.Decimal { return c.rating }
func (c *Course) StripePriceID() string   { return c.stripePriceID }
func (c *Course) IsPublished() bool       { return c.published }
func (c *Course) IsActive() bool          { return c.active }
func (c *Course) CreatedAt() time.Time    { return c.createdAt }
func (c *Course) UpdatedAt() time.Time    { return c.updatedAt }

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

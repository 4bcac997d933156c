package converter

import (
	"time"

	"course-checkout/internal/domain/course"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const CourseColumns = `id, name, slug, description, category, price,
	discount_amount, discount_starts_at, discount_ends_at, discount_applied,
	total_sold, rating, stripe_price_id, is_published, active, created_at, updated_at`

type CourseRow struct {
	ID               uuid.UUID           `db:"id"`
	Name             string              `db:"name"`
	Slug             string              `db:"slug"`
	Description      string              `db:"description"`
	Category         string              `db:"category"`
	Price            decimal.Decimal     `db:"price"`
	DiscountAmount   decimal.NullDecimal `db:"discount_amount"`
	DiscountStartsAt *time.Time          `db:"discount_starts_at"`
	DiscountEndsAt   *time.Time          `db:"discount_ends_at"`
	DiscountApplied  bool                `db:"discount_applied"`
	TotalSold        int                 `db:"total_sold"`
	Rating           decimal.Decimal     `db:"rating"`
	StripePriceID    string              `db:"stripe_price_id"`
	IsPublished      bool                `db:"is_published"`
	Active           bool                `db:"active"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}

func CourseFromRow(r CourseRow) *course.Course {
	var discount *course.Discount
	if r.DiscountAmount.Valid {
		discount = &course.Discount{
			Amount:   r.DiscountAmount.Decimal,
			StartsAt: r.DiscountStartsAt,
			EndsAt:   r.DiscountEndsAt,
			Applied:  r.DiscountApplied,
		}
	}
	return course.Reconstruct(course.Snapshot{
		ID:            r.ID,
		Name:          r.Name,
		Slug:          r.Slug,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		Discount:      discount,
		TotalSold:     r.TotalSold,
		Rating:        r.Rating,
		StripePriceID: r.StripePriceID,
		Published:     r.IsPublished,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	})
}

// CourseArgs returns the column values in CourseColumns order.
func CourseArgs(c *course.Course) []any {
	amount, startsAt, endsAt, applied := DiscountArgs(c.Discount())
	return []any{
		c.ID(), c.Name(), c.Slug(), c.Description(), c.Category(), c.Price(),
		amount, startsAt, endsAt, applied,
		c.TotalSold(), c.Rating(), c.StripePriceID(), c.IsPublished(), c.IsActive(), c.CreatedAt(), c.UpdatedAt(),
	}
}

func DiscountArgs(d *course.Discount) (decimal.NullDecimal, *time.Time, *time.Time, bool) {
	if d == nil {
		return decimal.NullDecimal{}, nil, nil, false
	}
	return decimal.NewNullDecimal(d.Amount), d.StartsAt, d.EndsAt, d.Applied
}

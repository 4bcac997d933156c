//go:build unit || e2e

package builder

import (
	"time"

	"course-checkout/internal/domain/course"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CourseBuilder struct {
	ID            uuid.UUID
	Name          string
	Category      string
	Price         decimal.Decimal
	Discount      *course.Discount
	StripePriceID string
	Published     bool
	Active        bool
	TotalSold     int
	Now           time.Time
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:            uuid.New(),
		Name:          "Go Concurrency in Practice",
		Category:      "programming",
		Price:         decimal.NewFromInt(1000),
		StripePriceID: "price_test_123",
		Published:     true,
		Active:        true,
		Now:           time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *CourseBuilder) With(mutate func(*CourseBuilder)) *CourseBuilder {
	mutate(b)
	return b
}

func (b *CourseBuilder) Params() course.Params {
	return course.Params{
		Name:          b.Name,
		Category:      b.Category,
		Price:         b.Price,
		Discount:      b.Discount,
		StripePriceID: b.StripePriceID,
		Published:     b.Published,
	}
}

func (b *CourseBuilder) BuildDomain() (*course.Course, error) {
	return course.NewCourse(b.Params(), b.Now)
}

func (b *CourseBuilder) BuildPersisted() *course.Course {
	return course.Reconstruct(course.Snapshot{
		ID:            b.ID,
		Name:          b.Name,
		Slug:          "go-concurrency-in-practice",
		Category:      b.Category,
		Price:         b.Price,
		Discount:      b.Discount,
		TotalSold:     b.TotalSold,
		Rating:        decimal.Zero,
		StripePriceID: b.StripePriceID,
		Published:     b.Published,
		Active:        b.Active,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	})
}

func (b *CourseBuilder) WithID(id uuid.UUID) *CourseBuilder {
	b.ID = id
	return b
}

func (b *CourseBuilder) WithPrice(price int64) *CourseBuilder {
	b.Price = decimal.NewFromInt(price)
	return b
}

func (b *CourseBuilder) WithDiscount(amount int64, start, end *time.Time, applied bool) *CourseBuilder {
	b.Discount = &course.Discount{
		Amount:   decimal.NewFromInt(amount),
		StartsAt: start,
		EndsAt:   end,
		Applied:  applied,
	}
	return b
}

func (b *CourseBuilder) AsUnpublished() *CourseBuilder {
	b.Published = false
	return b
}

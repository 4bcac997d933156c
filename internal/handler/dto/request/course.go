package request

import (
	"time"

	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type CreateCourseRequest struct {
	Name              string           `json:"name" binding:"required,max=200"`
	Slug              string           `json:"slug" binding:"omitempty,max=200"`
	Description       string           `json:"description" binding:"max=5000"`
	Category          string           `json:"category" binding:"max=100"`
	Price             decimal.Decimal  `json:"price"`
	DiscountAmount    *decimal.Decimal `json:"discountAmount"`
	DiscountStartDate *time.Time       `json:"discountStartDate"`
	DiscountEndDate   *time.Time       `json:"discountEndDate"`
	StripePriceID     string           `json:"stripePriceId" binding:"max=100"`
	Published         bool             `json:"isPublished"`
}

func (r *CreateCourseRequest) ToCommand() (commands.CourseInput, error) {
	var in commands.CourseInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.CourseInput{}, errs.Wrap(err, "map course request")
	}
	return in, nil
}

// UpdateCourseRequest leaves a field untouched when it is absent from the body.
type UpdateCourseRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Slug              *string          `json:"slug" binding:"omitempty,max=200"`
	Description       *string          `json:"description" binding:"omitempty,max=5000"`
	Category          *string          `json:"category" binding:"omitempty,max=100"`
	Price             *decimal.Decimal `json:"price"`
	DiscountAmount    *decimal.Decimal `json:"discountAmount"`
	DiscountStartDate *time.Time       `json:"discountStartDate"`
	DiscountEndDate   *time.Time       `json:"discountEndDate"`
	ClearDiscount     bool             `json:"clearDiscount"`
	StripePriceID     *string          `json:"stripePriceId" binding:"omitempty,max=100"`
	Published         *bool            `json:"isPublished"`
}

func (r *UpdateCourseRequest) ToCommand() (commands.CoursePatch, error) {
	var p commands.CoursePatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.CoursePatch{}, errs.Wrap(err, "map course patch")
	}
	return p, nil
}

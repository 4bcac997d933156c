package response

import "course-checkout/internal/usecase/shared"

type DiscountWindowJobResponse struct {
	Status              string `json:"status"`
	UpdatedCoursesCount int    `json:"updatedCoursesCount"`
}

type ExchangeRatesResponse struct {
	Status string            `json:"status"`
	Data   *shared.RateTable `json:"data"`
}

package api

import (
	"net/http"

	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	window commands.DiscountWindowCommands
	rates  commands.ExchangeRateCommands
}

func NewJobHandler(window commands.DiscountWindowCommands, rates commands.ExchangeRateCommands) *JobHandler {
	return &JobHandler{window: window, rates: rates}
}

// @Summary Run discount window job
// @Description Applies discounts whose window opened and reverts those whose window closed
// @Tags jobs
// @Produce json
// @Param X-Job-Token header string true "Scheduler token"
// @Success 200 {object} resdto.DiscountWindowJobResponse
// @Failure 401 {object} httperr.Response
// @Router /jobs/discount-window [post]
func (h *JobHandler) DiscountWindow(c *gin.Context) {
	updated, err := h.window.Run(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DiscountWindowJobResponse{Status: resdto.StatusSuccess, UpdatedCoursesCount: updated})
}

// @Summary Refresh exchange rates
// @Tags jobs
// @Produce json
// @Param X-Job-Token header string true "Scheduler token"
// @Success 200 {object} resdto.ExchangeRatesResponse
// @Failure 401 {object} httperr.Response
// @Router /jobs/exchange-rates [post]
func (h *JobHandler) ExchangeRates(c *gin.Context) {
	table, err := h.rates.Refresh(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ExchangeRatesResponse{Status: resdto.StatusSuccess, Data: table})
}

type ExchangeRateHandler struct {
	q queries.ExchangeRateQueries
}

func NewExchangeRateHandler(q queries.ExchangeRateQueries) *ExchangeRateHandler {
	return &ExchangeRateHandler{q: q}
}

// @Summary Get exchange rates
// @Tags exchange-rates
// @Produce json
// @Success 200 {object} resdto.ExchangeRatesResponse
// @Failure 404 {object} httperr.Response
// @Router /exchange-rates [get]
func (h *ExchangeRateHandler) Get(c *gin.Context) {
	table, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ExchangeRatesResponse{Status: resdto.StatusSuccess, Data: table})
}

package api

import (
	"net/http"

	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q queries.StatsQueries
}

func NewStatsHandler(q queries.StatsQueries) *StatsHandler {
	return &StatsHandler{q: q}
}

// @Summary Dashboard statistics
// @Description Entity counts plus weekly and monthly series of sign-ups and instructor applications.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DataResponse
// @Router /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	view, err := h.q.Get(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("stats", view))
}

package api

import (
	"net/http"

	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	q queries.TransactionQueries
}

func NewTransactionHandler(q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{q: q}
}

// @Summary List transactions
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 6, max 100)"
// @Success 200 {object} resdto.ListResponse
// @Failure 403 {object} httperr.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	p, ok := listParams(c, queries.TransactionResource)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	writeList(c, queries.TransactionResource.Name, page)
}

// @Summary Get transaction
// @Tags transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.DataResponse
// @Failure 404 {object} httperr.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("transaction", view))
}

package api

import (
	"net/http"

	reqdto "course-checkout/internal/handler/dto/request"
	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ManualTransactionHandler struct {
	cmds commands.ManualTransactionCommands
	q    queries.ManualTransactionQueries
}

func NewManualTransactionHandler(cmds commands.ManualTransactionCommands, q queries.ManualTransactionQueries) *ManualTransactionHandler {
	return &ManualTransactionHandler{cmds: cmds, q: q}
}

// @Summary List manual transactions
// @Tags manual-transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse
// @Router /manual-transactions [get]
func (h *ManualTransactionHandler) List(c *gin.Context) {
	p, ok := listParams(c, queries.ManualTransactionResource)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	writeList(c, queries.ManualTransactionResource.Name, page)
}

// @Summary Get manual transaction
// @Tags manual-transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manual transaction ID"
// @Success 200 {object} resdto.DataResponse
// @Failure 404 {object} httperr.Response
// @Router /manual-transactions/{id} [get]
func (h *ManualTransactionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("manualTransaction", view))
}

// @Summary Record manual transaction
// @Tags manual-transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateManualTransactionRequest true "Transaction"
// @Success 201 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Router /manual-transactions [post]
func (h *ManualTransactionHandler) Create(c *gin.Context) {
	var req reqdto.CreateManualTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/manual-transactions/"+id.String())
	c.JSON(http.StatusCreated, resdto.NewDataResponse("manualTransaction", view))
}

// @Summary Update manual transaction
// @Tags manual-transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Manual transaction ID"
// @Param request body reqdto.UpdateManualTransactionRequest true "Fields to change"
// @Success 200 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /manual-transactions/{id} [patch]
func (h *ManualTransactionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateManualTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToCommand()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, patch); err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("manualTransaction", view))
}

// @Summary Delete manual transaction
// @Tags manual-transactions
// @Security BearerAuth
// @Param id path string true "Manual transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /manual-transactions/{id} [delete]
func (h *ManualTransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

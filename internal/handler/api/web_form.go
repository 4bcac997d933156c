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

type WebFormHandler struct {
	cmds commands.WebFormCommands
	q    queries.WebFormQueries
}

func NewWebFormHandler(cmds commands.WebFormCommands, q queries.WebFormQueries) *WebFormHandler {
	return &WebFormHandler{cmds: cmds, q: q}
}

// @Summary List web forms
// @Tags web-forms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListResponse
// @Router /web-forms [get]
func (h *WebFormHandler) List(c *gin.Context) {
	p, ok := listParams(c, queries.WebFormResource)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	writeList(c, queries.WebFormResource.Name, page)
}

// @Summary Get web form
// @Tags web-forms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Web form ID"
// @Success 200 {object} resdto.DataResponse
// @Failure 404 {object} httperr.Response
// @Router /web-forms/{id} [get]
func (h *WebFormHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("webForm", view))
}

// @Summary Submit web form
// @Tags web-forms
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitWebFormRequest true "Form"
// @Success 201 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Router /web-forms [post]
func (h *WebFormHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitWebFormRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.cmds.Submit(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/web-forms/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{Status: resdto.StatusSuccess, ID: id.String()})
}

// @Summary Update web form
// @Tags web-forms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Web form ID"
// @Param request body reqdto.UpdateWebFormRequest true "Fields to change"
// @Success 200 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /web-forms/{id} [patch]
func (h *WebFormHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateWebFormRequest
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
	c.JSON(http.StatusOK, resdto.NewDataResponse("webForm", view))
}

// @Summary Delete web form
// @Tags web-forms
// @Security BearerAuth
// @Param id path string true "Web form ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /web-forms/{id} [delete]
func (h *WebFormHandler) Delete(c *gin.Context) {
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

package api

import (
	"net/http"

	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users queries.UserQueries
}

func NewUserHandler(users queries.UserQueries) *UserHandler {
	return &UserHandler{users: users}
}

// @Summary Get my stored credit
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.DataResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/me/credit [get]
func (h *UserHandler) MyCredit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	view, err := h.users.GetMyCredit(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("inCash", view))
}

// @Summary Get stored credit
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "Credit ID"
// @Success 200 {object} resdto.DataResponse
// @Failure 404 {object} httperr.Response
// @Router /credits/{id} [get]
func (h *UserHandler) GetCredit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.users.GetCredit(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("inCash", view))
}

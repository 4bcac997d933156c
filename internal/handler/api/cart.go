package api

import (
	"net/http"

	reqdto "course-checkout/internal/handler/dto/request"
	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get my cart
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DataResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	items, err := h.q.GetMyCart(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("cart", items))
}

// @Summary Add course to my cart
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CartItemRequest true "Course"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/me/cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	userID, courseID, ok := h.bindItem(c)
	if !ok {
		return
	}
	added, err := h.cmds.Add(c.Request.Context(), userID, courseID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusOK, resdto.NewMessageResponse("course already in cart"))
		return
	}
	c.JSON(http.StatusOK, resdto.NewMessageResponse("course - "+courseID.String()+" added to cart"))
}

// @Summary Remove course from my cart
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CartItemRequest true "Course"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /users/me/cart [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	userID, courseID, ok := h.bindItem(c)
	if !ok {
		return
	}
	if err := h.cmds.Remove(c.Request.Context(), userID, courseID); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMessageResponse("course - "+courseID.String()+" removed from cart"))
}

func (h *CartHandler) bindItem(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	var req reqdto.CartItemRequest
	if !bindJSON(c, &req) {
		return uuid.Nil, uuid.Nil, false
	}
	// binding already enforces the uuid format
	return userID, uuid.MustParse(req.CourseID), true
}

package api

import (
	"net/http"

	"course-checkout/internal/domain/user"
	reqdto "course-checkout/internal/handler/dto/request"
	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/handler/middleware"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	cmds    commands.CourseCommands
	q       queries.CourseQueries
	reviews queries.ReviewQueries
}

func NewCourseHandler(cmds commands.CourseCommands, q queries.CourseQueries, reviews queries.ReviewQueries) *CourseHandler {
	return &CourseHandler{cmds: cmds, q: q, reviews: reviews}
}

// includeInactive is honoured only for admins.
func includeInactive(c *gin.Context) bool {
	role, ok := middleware.GetUserRole(c)
	return ok && role.AtLeast(user.RoleAdmin) && c.Query("includeInactive") == "true"
}

// @Summary List courses
// @Description Lists active courses with paging, projection, sorting and range filters
// @Tags courses
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 6, max 100)"
// @Param fields query string false "Comma separated fields"
// @Param sort query string false "Comma separated sort keys, '-' for descending"
// @Success 200 {object} resdto.ListResponse
// @Failure 400 {object} httperr.Response
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	p, ok := listParams(c, queries.CourseResource)
	if !ok {
		return
	}
	page, err := h.q.List(c.Request.Context(), p, includeInactive(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	writeList(c, queries.CourseResource.Name, page)
}

// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, includeInactive(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("course", view))
}

// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourseRequest true "Course"
// @Success 201 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToCommand()
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Header("Location", "/api/courses/"+id.String())
	c.JSON(http.StatusCreated, resdto.NewDataResponse("course", view))
}

// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body reqdto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} resdto.DataResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id} [patch]
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCourseRequest
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
	view, err := h.q.Get(c.Request.Context(), id, true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewDataResponse("course", view))
}

// @Summary Delete course
// @Description Soft delete: the course is hidden from listings and cannot be purchased
// @Tags courses
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
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

// @Summary List course reviews
// @Description Approved reviews of a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.ListResponse
// @Failure 400 {object} httperr.Response
// @Router /courses/{id}/reviews [get]
func (h *CourseHandler) Reviews(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, ok := listParams(c, queries.ReviewResource)
	if !ok {
		return
	}
	page, err := h.reviews.ListByCourse(c.Request.Context(), id, p)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	writeList(c, queries.ReviewResource.Name, page)
}

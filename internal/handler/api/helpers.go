package api

import (
	"net/http"

	resdto "course-checkout/internal/handler/dto/response"
	"course-checkout/internal/handler/httperr"
	"course-checkout/internal/handler/middleware"
	"course-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.MsgInvalidToken, nil)
		return uuid.Nil, false
	}
	return userID, true
}

func listParams(c *gin.Context, res queries.Resource) (queries.ListParams, bool) {
	p, err := queries.ParseListParams(c.Request.URL.Query(), res)
	if err != nil {
		httperr.Respond(c, err)
		return queries.ListParams{}, false
	}
	return p, true
}

func writeList[T any](c *gin.Context, resource string, page *queries.Page[T]) {
	body, err := resdto.NewListResponse(resource, page)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return false
	}
	return true
}

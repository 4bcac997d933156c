package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"course-checkout/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidToken    = "Invalid Token"
	MsgDuplicateEntry  = "Duplicate Entry Found"
	MsgNotFound        = "Resource not found"
	MsgInvalidRelation = "Invalid reference to a related record"
	MsgServerError     = "Something went wrong"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps the original error on the context for the logger.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond classifies err and aborts with the matching status and message.
func Respond(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}
	AbortWithError(c, status, err, msg, nil)
}

// Classify maps an error to an HTTP status and a client-safe message.
func Classify(err error) (int, string) {
	storage := errs.Is(err, errs.ErrStorage)

	switch {
	case err == nil:
		return http.StatusInternalServerError, MsgServerError
	case errs.Is(err, errs.ErrDuplicate):
		return http.StatusBadRequest, MsgDuplicateEntry
	case errs.Is(err, errs.ErrValidation):
		if storage {
			return http.StatusBadRequest, MsgInvalidRelation
		}
		return http.StatusBadRequest, err.Error()
	case errs.Is(err, errs.ErrNotFound):
		if storage {
			return http.StatusNotFound, MsgNotFound
		}
		return http.StatusNotFound, err.Error()
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, MsgServerError
	}
}

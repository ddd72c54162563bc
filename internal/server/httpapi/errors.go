package httpapi

import (
	"errors"
	"net/http"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/validation"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// statusOf maps service errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, l logging.Logger, err error) {
	status := statusOf(err)
	resp := errorResponse{Message: err.Error()}

	switch status {
	case http.StatusBadRequest:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			resp.Errors = verrs
		}
	case http.StatusNotFound:
		resp.Message = "not found"
	case http.StatusUnauthorized:
		resp.Message = "unauthorized"
		if errors.Is(err, common.ErrTokenExpired) {
			resp.Message = "token expired"
		}
	case http.StatusInternalServerError:
		l.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		resp.Message = "internal error"
	}

	c.AbortWithStatusJSON(status, resp)
}

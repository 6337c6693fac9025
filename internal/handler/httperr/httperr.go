// Package httperr renders failures as {"error":{"message":...},"detail":...}
// and records the cause on the gin context for ErrorHandler.
package httperr

import (
	"net/http"

	"library-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidRequest     = "Invalid request"
	MsgInvalidCredentials = "Invalid username or password"
	MsgInternal           = "Internal server error"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the context so it can be logged after the
// response is written.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromServiceError classifies a usecase failure. Lookup and uniqueness
// messages name the isbn or library and are returned as is; validation
// details go to "detail"; anything unclassified becomes a bare 500.
func FromServiceError(err error) Response {
	switch {
	case errs.Is(err, errs.ErrLibraryNotFound), errs.Is(err, errs.ErrCheckableNotFound):
		return NewResponse(http.StatusNotFound, err.Error(), nil)
	case errs.Is(err, errs.ErrResourceExists):
		return NewResponse(http.StatusConflict, err.Error(), nil)
	case errs.Is(err, errs.ErrDomainValidation):
		return NewResponse(http.StatusBadRequest, MsgInvalidRequest, err.Error())
	case errs.Is(err, errs.ErrInvalidCredentials):
		return NewResponse(http.StatusUnauthorized, MsgInvalidCredentials, nil)
	default:
		return NewResponse(http.StatusInternalServerError, MsgInternal, nil)
	}
}

func AbortWithServiceError(c *gin.Context, err error) {
	resp := FromServiceError(err)
	AbortWithError(c, resp.Status, err, resp.Error.Message, resp.Detail)
}

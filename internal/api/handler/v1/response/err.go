package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error envelope: {"status": 404, "message": "..."}.
type Err struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"status"`
	Message        string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}
	if e.Err != nil {
		_ = ctx.Error(e.Err)
	}

	ctx.JSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func ErrNotFound(resource, field string, value interface{}) *Err {
	return &Err{
		Err:            fmt.Errorf("%s with %s %v not found", resource, field, value),
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%s with %s %v not found", resource, field, value),
	}
}

// ErrNotFoundMessage is a 404 with a message meant for the submitter.
func ErrNotFoundMessage(message string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        message,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		Message:        err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "unauthorized",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "wrong username or password",
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
	}
}

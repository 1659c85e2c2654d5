package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Msg        string `json:"msg"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.Code, e.Msg)
}

func NewErr(statusCode int, code, msg string) *Err {
	return &Err{
		StatusCode: statusCode,
		Code:       code,
		Msg:        msg,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, "BAD_REQUEST", err.Error())
}

func ErrNotFound(resource, key string, value any) *Err {
	return NewErr(http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("%v not found by %v (%v)", resource, key, value))
}

func ErrWrongCredentials(err error) *Err {
	return NewErr(http.StatusUnauthorized, "WRONG_CREDENTIALS", err.Error())
}

func ErrUnauthorized(msg string) *Err {
	return NewErr(http.StatusUnauthorized, "UNAUTHORIZED", msg)
}

func ErrPermissionDenied(err error) *Err {
	return NewErr(http.StatusForbidden, "PERMISSION_DENIED", err.Error())
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, "CONFLICT", err.Error())
}

// ErrInternalServerError logs the real error and hands the caller a
// generic message.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, "INTERNAL_ERROR", "something went wrong")
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

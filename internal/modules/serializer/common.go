package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/botfarm-io/botfarm/internal/modules/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// FromError maps a registry-layer error to its HTTP status and response body:
// missing project/user -> 422, held lock -> 423, uniqueness violation -> 409,
// anything else -> 500.
func FromError(err error) (int, Response) {
	switch {
	case errors.Is(err, model.ErrProjectNotFound),
		errors.Is(err, model.ErrUserNotFound):
		return http.StatusUnprocessableEntity,
			Err(http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, model.ErrUserLocked):
		return http.StatusLocked,
			Err(http.StatusLocked, err.Error(), nil)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict,
			Err(http.StatusConflict, "record already exists", err)
	default:
		return http.StatusInternalServerError, DBErr("", err)
	}
}

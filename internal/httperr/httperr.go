package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// From maps a BusinessError to its HTTP status. Anything that is not a
// BusinessError becomes a 500 with the given fallback code.
func From(c *gin.Context, err error, fallbackCode string) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, fallbackCode, "Error interno.")
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, "Solicitud inválida.")
	case KindConflict:
		Conflict(c, be.Code, "Conflicto con el estado actual.")
	case KindNotFound:
		NotFound(c, be.Code, "Recurso no encontrado.")
	case KindForbidden:
		Forbidden(c, be.Code, "Acción no permitida.")
	case KindTransient:
		Write(c, http.StatusServiceUnavailable, be.Code, "Servicio temporalmente no disponible.")
	default:
		Internal(c, be.Code, "Error interno.")
	}
}

package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/protetiq/lab-orders-api/internal/validation"
)

type HTTPError struct {
	Code    string                  `json:"error_code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldIssue `json:"fields,omitempty"`
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

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Validation responde 400 com a lista de violações por campo.
func Validation(c *gin.Context, fields []validation.FieldIssue) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_error",
		Message: "Dados inválidos.",
		Fields:  fields,
	})
}

// Respond mapeia a taxonomia de domínio para o status HTTP.
// Erros fora da taxonomia são falha de store/serviço: 500 com a mensagem.
func Respond(c *gin.Context, err error) {
	var de *DomainError
	if !errors.As(err, &de) {
		Internal(c, "service_error", err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case KindInvalidInput:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	case KindConflict:
		status = http.StatusConflict
	}

	c.JSON(status, HTTPError{
		Code:    de.Code,
		Message: de.Message,
		Fields:  de.Fields,
	})
}

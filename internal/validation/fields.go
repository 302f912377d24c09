package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldIssue é um item da lista de violações retornada em erros 400.
type FieldIssue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Issues traduz o erro de binding do gin (validator.ValidationErrors)
// para a lista itemizada por campo. Erros que não vêm do validator
// (JSON malformado, por exemplo) viram um item único "body".
func Issues(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{
			Field:   "body",
			Rule:    "json",
			Message: "Corpo da requisição inválido.",
		}}
	}

	out := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldIssue{
			Field:   fieldName(fe),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func Issue(field, rule, message string) FieldIssue {
	return FieldIssue{Field: field, Rule: rule, Message: message}
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace vem como "CreateOrderRequest.ClientID"
	parts := strings.Split(fe.StructNamespace(), ".")
	return toSnake(parts[len(parts)-1])
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "email":
		return "E-mail inválido."
	case "gte", "min":
		return fmt.Sprintf("Valor mínimo: %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Valores aceitos: %s.", fe.Param())
	default:
		return fmt.Sprintf("Regra '%s' violada.", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevUpper := s[i-1] >= 'A' && s[i-1] <= 'Z'
			if !prevUpper {
				b.WriteByte('_')
			}
		}
		if upper {
			b.WriteByte(byte(r) + 'a' - 'A')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

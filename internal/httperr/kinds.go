package httperr

import (
	"github.com/protetiq/lab-orders-api/internal/validation"
)

// Taxonomia fechada de falhas de domínio. Todo erro que chega ao handler
// é uma dessas quatro variantes ou um erro cru do store (tratado como 500).
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindConflict
	KindService
)

type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []validation.FieldIssue
}

func (e *DomainError) Error() string {
	return e.Code
}

func ErrInvalid(code, message string) error {
	return &DomainError{Kind: KindInvalidInput, Code: code, Message: message}
}

func ErrService(code, message string) error {
	return &DomainError{Kind: KindService, Code: code, Message: message}
}

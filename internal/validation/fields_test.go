package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name       string  `validate:"required"`
	Email      string  `validate:"omitempty,email"`
	TotalValue float64 `validate:"gte=0"`
	ClientID   uint    `validate:"required"`
}

func TestIssuesFromValidator(t *testing.T) {
	v := validator.New()

	err := v.Struct(sampleRequest{
		Email:      "nope",
		TotalValue: -1,
	})
	require.Error(t, err)

	issues := Issues(err)
	require.Len(t, issues, 4)

	byField := map[string]FieldIssue{}
	for _, issue := range issues {
		byField[issue.Field] = issue
	}

	assert.Equal(t, "required", byField["name"].Rule)
	assert.Equal(t, "email", byField["email"].Rule)
	assert.Equal(t, "gte", byField["total_value"].Rule)
	assert.Equal(t, "required", byField["client_id"].Rule)
	assert.NotEmpty(t, byField["name"].Message)
}

func TestIssuesFromPlainError(t *testing.T) {
	issues := Issues(errors.New("unexpected EOF"))
	require.Len(t, issues, 1)
	assert.Equal(t, "body", issues[0].Field)
	assert.Equal(t, "json", issues[0].Rule)
}

func TestFieldNameSnakeCase(t *testing.T) {
	tests := map[string]string{
		"ClientID":   "client_id",
		"BasePrice":  "base_price",
		"CRO":        "cro",
		"Name":       "name",
		"TotalValue": "total_value",
	}
	for in, want := range tests {
		assert.Equal(t, want, toSnake(in), in)
	}
}

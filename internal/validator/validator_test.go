package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Content string `json:"content" validate:"required,notblank,max=10"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "ada@example.com", Content: "hi"})
	assert.NoError(t, err)
}

// Ошибки ключуются по json-именам полей, не по Go-именам
func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "not-an-email", Content: ""})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "content")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "ada@example.com", Content: "   "})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must not be blank", vErr.Errors["content"])
}

func TestValidate_Max(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "ada@example.com", Content: "this is way too long"})
	require.Error(t, err)
}

// File: internal/common/validation_test.go
package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string  `validate:"required,email"`
	Name  string  `validate:"required,max=10"`
	Price float64 `validate:"required,gt=0"`
}

func TestCheckStruct_Valid(t *testing.T) {
	err := CheckStruct(sampleRequest{Email: "a@example.com", Name: "Alice", Price: 5})
	assert.NoError(t, err)
}

func TestCheckStruct_CollectsPerFieldMessages(t *testing.T) {
	err := CheckStruct(sampleRequest{Email: "not-an-email", Name: "", Price: 0})

	require.Error(t, err)
	appErr, ok := IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	details, ok := appErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "Email")
	assert.Contains(t, details, "Name")
	assert.Contains(t, details, "Price")
}

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	derived := ErrNotFound.WithDetails("listing lst-1")

	assert.Nil(t, ErrNotFound.Details)
	assert.Equal(t, "listing lst-1", derived.Details)
	assert.Equal(t, ErrNotFound.Code, derived.Code)
}

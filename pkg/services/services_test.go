package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := ValidationError{Field: "email", Reason: "invalid format"}
	assert.Equal(t, "invalid email: invalid format", err.Error())
}

func TestProviderError(t *testing.T) {
	cause := errors.New("connection refused")
	err := ProviderError{Provider: "boldsign", Op: "get status", Err: cause}

	assert.Equal(t, "boldsign: get status: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	var providerErr ProviderError
	assert.ErrorAs(t, error(err), &providerErr)
	assert.Equal(t, "boldsign", providerErr.Provider)
}

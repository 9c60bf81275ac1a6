package errors

import (
	"net/http"
	"testing"

	"alvaqth/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrNetworkFailure.WithDetails("times backend returned 503")

	assert.True(t, errors.Is(err, ErrNetworkFailure))
	assert.False(t, errors.Is(err, ErrOptInFailed))
	assert.Equal(t, "Remote service request failed: times backend returned 503", err.Error())
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrLocationNotFound.WrapMessage("search Atlantis")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LOCATION_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrLocationNotFound))
}

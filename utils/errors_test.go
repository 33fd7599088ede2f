package utils_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarsakr/SakrStore/utils"
)

func TestGetAppErrorDirect(t *testing.T) {
	err := utils.ServiceUnavailableError("feed down", errors.New("timeout"))

	appErr := utils.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	assert.Equal(t, "feed down", appErr.Message)
}

func TestGetAppErrorWrapped(t *testing.T) {
	inner := utils.NewAppError(http.StatusNotFound, "feed missing", nil)
	err := utils.WrapError(inner, "loading catalog")

	appErr := utils.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestGetAppErrorPlainError(t *testing.T) {
	assert.Nil(t, utils.GetAppError(errors.New("connection reset")))
	assert.Nil(t, utils.GetAppError(nil))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, utils.WrapError(nil, "context"))

	inner := errors.New("boom")
	wrapped := utils.WrapError(inner, "doing thing")
	assert.EqualError(t, wrapped, "doing thing: boom")
	assert.ErrorIs(t, wrapped, inner)
}

package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/omarsakr/SakrStore/utils"
)

func TestCatalogErrorPlainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	catalogError(c, errors.New("connection reset"))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), utils.ErrCatalogLoad)
}

func TestCatalogErrorHonorsAppErrorStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	catalogError(c, utils.NewAppError(http.StatusBadGateway, "Feed unreachable", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Feed unreachable")
}

func TestCatalogErrorUnwrapsAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := utils.WrapError(utils.NewAppError(http.StatusNotFound, "Feed missing", nil), "loading catalog")
	catalogError(c, err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Feed missing")
}

package authz

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	publicID string
	err      error
	called   bool
}

func (f *fakeChecker) CheckAccess(_ context.Context, _ string, _ int) (string, error) {
	f.called = true
	return f.publicID, f.err
}

func gatedRouter(checker AccessChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAccessLevel(checker, 10), func(c *gin.Context) {
		publicID, err := CallerID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"public_id": publicID})
	})
	return router
}

func TestRequireAccessLevelInjectsCallerID(t *testing.T) {
	checker := &fakeChecker{publicID: "caller-1"}
	router := gatedRouter(checker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, "good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "caller-1")
	assert.True(t, checker.called)
}

func TestRequireAccessLevelMissingToken(t *testing.T) {
	checker := &fakeChecker{publicID: "caller-1"}
	router := gatedRouter(checker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing access token")
	assert.False(t, checker.called, "checker must not be called without a token")
}

func TestRequireAccessLevelCheckFailure(t *testing.T) {
	checker := &fakeChecker{err: errors.New("level too low")}
	router := gatedRouter(checker)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, "weak-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "access denied")
}

func TestCallerIDWithoutGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := CallerID(c)
	assert.Error(t, err)
}

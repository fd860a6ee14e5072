package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newLimitedRouter(limit rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	rl := NewUploadRateLimiter(limit, burst)
	router.POST("/upload", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

// TestRateLimiter_BurstExceeded проверяет отказ после исчерпания burst
func TestRateLimiter_BurstExceeded(t *testing.T) {
	router := newLimitedRouter(rate.Limit(0.001), 2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
		require.Equal(t, http.StatusOK, w.Code, "запрос %d в пределах burst", i+1)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Слишком много запросов")
}

// TestRateLimiter_PerClient проверяет независимость лимитов разных клиентов
func TestRateLimiter_PerClient(t *testing.T) {
	router := newLimitedRouter(rate.Limit(0.001), 1)

	first := httptest.NewRequest(http.MethodPost, "/upload", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, first)
	require.Equal(t, http.StatusOK, w.Code)

	repeat := httptest.NewRequest(http.MethodPost, "/upload", nil)
	repeat.RemoteAddr = "10.0.0.1:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, repeat)
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	other := httptest.NewRequest(http.MethodPost, "/upload", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code, "другой клиент не должен упираться в чужой лимит")
}

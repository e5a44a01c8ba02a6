package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func limitedRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(perMin, zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r http.Handler, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_LimitsPerIP(t *testing.T) {
	r := limitedRouter(2)

	assert.Equal(t, http.StatusOK, get(r, "198.51.100.1"))
	assert.Equal(t, http.StatusOK, get(r, "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "198.51.100.1"))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, get(r, "198.51.100.2"))
}

func TestGetClientIP_HeaderPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.1:1234"

	assert.Equal(t, "192.0.2.1", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "198.51.100.9")
	assert.Equal(t, "198.51.100.9", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.5, 198.51.100.9")
	assert.Equal(t, "203.0.113.5", getClientIP(c))
}

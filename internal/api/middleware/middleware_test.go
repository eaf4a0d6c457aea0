package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pokehub-backend/internal/auth"
	"pokehub-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	t.Run("Generated", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := serve(router, req)
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})
}

func TestLogger(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	req := httptest.NewRequest(http.MethodGet, "/ok?page=2", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	serve(router, req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/ok?page=2", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "req-1", entry.Data["request_id"])

	serve(router, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRecovery(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	router := gin.New()
	router.Use(Recovery())
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://pokehub.example"}}
	router := gin.New()
	router.Use(CORS(cfg))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://pokehub.example")
		w := serve(router, req)
		assert.Equal(t, "https://pokehub.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := serve(router, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://pokehub.example")
		w := serve(router, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Wildcard", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(&config.Config{AllowedOrigins: []string{"*"}}))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := serve(r, req)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestClientLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewClientLimiter(1, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "clients are limited independently")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"), "one token refilled")

	now = now.Add(limiterIdleTTL + time.Second)
	l.Allow("c")
	assert.Equal(t, 1, l.Clients(), "idle buckets are swept")
}

func TestRateLimit(t *testing.T) {
	l := NewClientLimiter(0.001, 1)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Set(auth.ContextUserID, user)
		}
		c.Next()
	})
	router.Use(RateLimit(l))
	router.POST("/validate", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := serve(router, httptest.NewRequest(http.MethodPost, "/validate", nil))
	second := serve(router, httptest.NewRequest(http.MethodPost, "/validate", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))

	req := httptest.NewRequest(http.MethodPost, "/validate", nil)
	req.Header.Set("X-Test-User", "ash")
	assert.Equal(t, http.StatusOK, serve(router, req).Code, "authenticated users get their own bucket")
}

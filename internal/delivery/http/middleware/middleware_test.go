package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORSPrivateOrigins(t *testing.T) {
	t.Setenv("GIN_MODE", "release")

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(middleware.CORSMiddleware("https://app.example.com"))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	request := func(origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		newRouter().ServeHTTP(w, req)
		return w
	}

	t.Run("configured frontend is allowed", func(t *testing.T) {
		w := request("https://app.example.com")
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("LAN origins are allowed in production", func(t *testing.T) {
		for _, origin := range []string{"http://192.168.1.50:3000", "http://10.0.0.2", "http://localhost:4000"} {
			w := request(origin)
			assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	})

	t.Run("public origins are not allowed in production", func(t *testing.T) {
		w := request("https://evil.example.net")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://app.example.com")
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestErrorHandlerClassification(t *testing.T) {
	newRouter := func(err error) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/boom", func(c *gin.Context) { c.Error(err) })
		return r
	}

	cases := []struct {
		err    error
		status int
	}{
		{apperror.BadRequest("campo inválido"), http.StatusBadRequest},
		{apperror.Unauthorized("token"), http.StatusUnauthorized},
		{apperror.Forbidden("restrito"), http.StatusForbidden},
		{apperror.NotFound("sumiu"), http.StatusNotFound},
		{apperror.Conflict("duplicado"), http.StatusConflict},
		{apperror.UnsupportedEntity("ghosts"), http.StatusNotFound},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		newRouter(tc.err).ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)
	}
}

func TestRateLimitInMemory(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit: 2, Window: time.Minute, KeyPrefix: "rl:test:",
	}))
	r.GET("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	var last int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"capi-onboarding-backend/internal/config"
	"capi-onboarding-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context())+"|"+c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated+"|"+generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123|abc-123", w.Body.String())
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"kaboom"}}`, w.Body.String())
}

func TestRecoveryStackFollowsEnvironment(t *testing.T) {
	testCases := []struct {
		environment string
		wantStack   bool
	}{
		{"development", true},
		{"test", true},
		{"production", false},
	}

	for _, tc := range testCases {
		t.Run(tc.environment, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorDetail(&config.Config{Environment: tc.environment}), Recovery())
			router.GET("/boom", func(c *gin.Context) {
				panic("kaboom")
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

			var body struct {
				Error struct {
					Message string `json:"message"`
					Stack   string `json:"stack"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "kaboom", body.Error.Message)
			if tc.wantStack {
				assert.Contains(t, body.Error.Stack, "goroutine")
			} else {
				assert.Empty(t, body.Error.Stack)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000", "https://onboarding.example.com/"}}
	router := gin.New()
	router.Use(CORS(cfg))
	router.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	testCases := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		allowOrigin string
	}{
		{"allowed origin", http.MethodGet, "http://localhost:3000", http.StatusOK, "http://localhost:3000"},
		{"trailing slash configured", http.MethodGet, "https://onboarding.example.com", http.StatusOK, "https://onboarding.example.com"},
		{"unknown origin", http.MethodGet, "https://evil.example", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "http://localhost:3000", http.StatusNoContent, "http://localhost:3000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/api/health", nil)
			req.Header.Set("Origin", tc.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.allowOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggerAndMetricsPassThrough(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Logger(), Metrics())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/7", nil))
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

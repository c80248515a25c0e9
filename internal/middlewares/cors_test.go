package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/omnilearn-lambda/internal/middlewares"
)

func TestCorsMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("AllowedOrigin", func(t *testing.T) {
		h := middlewares.CorsMiddleware([]string{"http://localhost:5173"})(ok)

		req := httptest.NewRequest(http.MethodGet, "/state", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("allow-origin = %q", got)
		}
		if rec.Code != http.StatusTeapot {
			t.Errorf("status = %d, request should reach the handler", rec.Code)
		}
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		h := middlewares.CorsMiddleware([]string{"http://localhost:5173"})(ok)

		req := httptest.NewRequest(http.MethodGet, "/state", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("allow-origin = %q, want none", got)
		}
	})

	t.Run("PreflightWildcard", func(t *testing.T) {
		h := middlewares.CorsMiddleware(nil)(ok)

		req := httptest.NewRequest(http.MethodOptions, "/chat/messages", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("allow-origin = %q", got)
		}
		if rec.Code == http.StatusTeapot {
			t.Error("preflight should be answered by the middleware")
		}
	})
}

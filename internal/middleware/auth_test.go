package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"winsbygroup.com/lunchly/internal/middleware"
)

// Helper to create echo context with request/response
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func TestAdminAPIKeyAuth(t *testing.T) {
	const testAPIKey = "test-admin-key-12345"

	t.Run("allows request with valid API key", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/api/customers")
		c.Request().Header.Set("X-API-Key", testAPIKey)

		if err := middleware.AdminAPIKeyAuth(testAPIKey)(okHandler)(c); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	rejects := []struct {
		name      string
		configKey string
		header    string
	}{
		{"invalid API key", testAPIKey, "wrong-key"},
		{"missing API key", testAPIKey, ""},
		{"admin key not configured", "", "any-key"},
	}
	for _, tc := range rejects {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			c, _ := newContext(http.MethodGet, "/api/customers")
			if tc.header != "" {
				c.Request().Header.Set("X-API-Key", tc.header)
			}

			err := middleware.AdminAPIKeyAuth(tc.configKey)(okHandler)(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %T", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", httpErr.Code)
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	if !middleware.ValidateAdminKey("secret", "secret") {
		t.Error("expected matching key to validate")
	}
	if middleware.ValidateAdminKey("secret", "secreT") {
		t.Error("expected different key to fail")
	}
	if middleware.ValidateAdminKey("", "") {
		t.Error("expected empty admin key to never validate")
	}
}

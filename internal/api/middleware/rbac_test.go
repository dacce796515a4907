package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func rbacRequest(t *testing.T, role string, allowedRoles ...string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	mw := RBAC(allowedRoles...)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRBAC_AllowedRole(t *testing.T) {
	if code := rbacRequest(t, "admin", "admin"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRBAC_AllowedSecondRole(t *testing.T) {
	if code := rbacRequest(t, "viewer", "admin", "viewer"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRBAC_ForbiddenRole(t *testing.T) {
	if code := rbacRequest(t, "viewer", "admin"); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRBAC_MissingRole(t *testing.T) {
	if code := rbacRequest(t, "", "admin"); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

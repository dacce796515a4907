package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientdesk/crm-api/internal/api/handler"
	"github.com/clientdesk/crm-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_InvalidCredentials(t *testing.T) {
	code, body := renderError(t, domain.ErrInvalidCredentials)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["message"] != "Invalid credentials" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_NotFoundCarriesEntityAndID(t *testing.T) {
	code, body := renderError(t, domain.NotFound("customer", 12))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if body["message"] != "customer with id 12 not found" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestErrorHandler_Conflicts(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrUsernameTaken, "Username already exists"},
		{domain.ErrEmailTaken, "Email already exists"},
		{domain.ErrSelfDeletion, "You cannot delete your own account"},
	}
	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != http.StatusConflict {
			t.Errorf("%v: expected 409, got %d", tc.err, code)
		}
		if body["message"] != tc.want {
			t.Errorf("%v: unexpected message: %v", tc.err, body["message"])
		}
	}
}

func TestErrorHandler_ValidationErrorListsFieldMessages(t *testing.T) {
	ve := &handler.ValidationError{Messages: []string{"name is required", "email must be a valid email"}}
	code, body := renderError(t, ve)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["message"] != "Validation failed" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	msgs, ok := body["errors"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("unexpected errors list: %v", body["errors"])
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["message"] != "Internal server error" {
		t.Fatalf("internal detail leaked: %v", body["message"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusForbidden, "Forbidden"))
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if body["message"] != "Forbidden" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

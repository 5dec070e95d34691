package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"plant not found", domain.ErrPlantNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"invalid role", domain.ErrInvalidRole, http.StatusUnprocessableEntity},
		{"unknown status", domain.ErrUnknownStatus, http.StatusUnprocessableEntity},
		{"signing failure", domain.ErrSigningFailure, http.StatusInternalServerError},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/orders/42", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Status {
				t.Fatalf("status field must be false on errors")
			}
			if resp.Message == "" {
				t.Fatalf("message must not be empty")
			}
		})
	}
}

func TestHTTPErrorHandler_KeepsEchoErrors(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorHidesCause(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(errors.New("mongo: connection reset"), c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "internal server error" {
		t.Fatalf("message = %q, internal detail leaked", resp.Message)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/plants-api/internal/api/middleware"
	"github.com/greenhouse/plants-api/internal/core/domain"
)

type stubAuthService struct {
	token string
	user  *domain.User
	err   error

	gotRole string
}

func (s *stubAuthService) Signup(_ context.Context, name, email, password, role string) (string, *domain.User, error) {
	s.gotRole = role
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{
		token: "minted-token",
		user:  &domain.User{ID: 7, Name: "Ada", Email: "ada@plants.local", Role: domain.RoleClient},
	}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Ada","email":"ada@plants.local","password":"greenhouse","role":"client"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token != "minted-token" {
		t.Fatalf("token = %q, want minted-token", resp.Token)
	}

	cookie := findCookie(t, rec, middleware.TokenCookieName)
	if cookie == nil {
		t.Fatalf("credential cookie not set")
	}
	if cookie.Value != "minted-token" {
		t.Fatalf("cookie value = %q, want minted-token", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("cookie MaxAge = %d, want %d", cookie.MaxAge, int(time.Hour.Seconds()))
	}
}

func TestAuthHandler_Signup_RejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"email":"ada@plants.local"}`},
		{"bad email", `{"name":"Ada","email":"nope","password":"greenhouse","role":"client"}`},
		{"short password", `{"name":"Ada","email":"ada@plants.local","password":"short","role":"client"}`},
		{"admin role", `{"name":"Ada","email":"ada@plants.local","password":"greenhouse","role":"admin"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newAuthTestContext(t, http.MethodPost, "/auth/signup", tt.body)

			err := h.Signup(c)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if he.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", he.Code)
			}
		})
	}
}

func TestAuthHandler_Signup_PropagatesServiceError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists}, time.Hour)

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Ada","email":"ada@plants.local","password":"greenhouse","role":"client"}`)

	if err := h.Signup(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		token: "minted-token",
		user:  &domain.User{ID: 7, Name: "Ada", Email: "ada@plants.local", Role: domain.RoleClient},
	}
	h := NewAuthHandler(svc, time.Hour)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@plants.local","password":"greenhouse"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cookie := findCookie(t, rec, middleware.TokenCookieName); cookie == nil || cookie.Value != "minted-token" {
		t.Fatalf("credential cookie not set on login")
	}
}

func TestAuthHandler_Login_PropagatesInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials}, time.Hour)

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@plants.local","password":"wrong-pass"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	cookie := findCookie(t, rec, middleware.TokenCookieName)
	if cookie == nil {
		t.Fatalf("expected an expiring cookie")
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("cookie MaxAge = %d, want negative", cookie.MaxAge)
	}
	if cookie.Value != "" {
		t.Fatalf("cookie value = %q, want empty", cookie.Value)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newAuthTestContext(t, http.MethodGet, "/user", "")
	middleware.SetPrincipal(c, domain.Principal{ID: 7, Name: "Ada", Email: "ada@plants.local", Role: domain.RoleClient})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var p domain.Principal
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if p.ID != 7 || p.Role != domain.RoleClient {
		t.Fatalf("unexpected principal %+v", p)
	}
}

func TestAuthHandler_Me_Anonymous(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, _ := newAuthTestContext(t, http.MethodGet, "/user", "")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", he.Code)
	}
}

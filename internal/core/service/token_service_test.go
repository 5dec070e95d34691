package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

const testHost = "plants.local"

func testPrincipal() domain.Principal {
	return domain.Principal{ID: 7, Name: "Alice", Email: "alice@example.com", Role: domain.RoleClient}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", testHost, time.Hour)

	token, err := svc.Issue(testPrincipal())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty string")
	}

	got, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if *got != testPrincipal() {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !svc.IsValid(token) {
		t.Fatalf("IsValid false for a freshly issued token")
	}
}

func TestTokenService_StampsAllRegisteredClaims(t *testing.T) {
	svc := NewTokenService("secret", testHost, time.Hour)

	token, err := svc.Issue(testPrincipal())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("decode token: %v", err)
	}

	if claims.Issuer != testHost {
		t.Fatalf("issuer = %q, want %q", claims.Issuer, testHost)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != testHost {
		t.Fatalf("audience = %v, want [%s]", claims.Audience, testHost)
	}
	if claims.IssuedAt == nil || claims.NotBefore == nil || claims.ExpiresAt == nil {
		t.Fatalf("missing timing claims: iat=%v nbf=%v exp=%v", claims.IssuedAt, claims.NotBefore, claims.ExpiresAt)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("exp - iat = %v, want 1h", got)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", testHost, time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	expired := mintToken(t, "secret", tokenClaims{
		UserID: 7, Name: "Alice", Email: "alice@example.com", Role: "client",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testHost,
			Audience:  jwt.ClaimStrings{testHost},
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	})

	if _, err := svc.Parse(expired); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
	if svc.IsValid(expired) {
		t.Fatalf("IsValid true for an expired token")
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	svc := NewTokenService("secret", testHost, time.Hour)
	other := NewTokenService("other-secret", testHost, time.Hour)

	token, err := other.Issue(testPrincipal())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Parse(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestTokenService_IssuerMismatch(t *testing.T) {
	svc := NewTokenService("secret", testHost, time.Hour)
	foreign := NewTokenService("secret", "evil.example.com", time.Hour)

	token, err := foreign.Issue(testPrincipal())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Same secret, wrong iss/aud: still the one generic failure.
	if _, err := svc.Parse(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for issuer mismatch, got %v", err)
	}
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService("secret", testHost, time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Parse(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Parse(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestTokenService_UnknownRoleClaim(t *testing.T) {
	svc := NewTokenService("secret", testHost, time.Hour)

	now := time.Now()
	token := mintToken(t, "secret", tokenClaims{
		UserID: 7, Role: "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testHost,
			Audience:  jwt.ClaimStrings{testHost},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})

	if _, err := svc.Parse(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for unknown role, got %v", err)
	}
}

func TestTokenService_MissingSecret(t *testing.T) {
	svc := NewTokenService("", testHost, time.Hour)

	if _, err := svc.Issue(testPrincipal()); !errors.Is(err, domain.ErrSigningFailure) {
		t.Fatalf("expected ErrSigningFailure, got %v", err)
	}
}

func mintToken(t *testing.T, secret string, claims tokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

// tokenClaims is the wire payload of the credential: the principal fields
// plus the registered timing/issuer claims, all of which are mandatory.
type tokenClaims struct {
	UserID int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService implements ports.TokenService over HS256 with a single
// symmetric secret. Validation is pure computation: no store is consulted,
// so there is no mid-lifetime revocation (see domain.ErrInvalidToken).
type TokenService struct {
	secret []byte
	host   string
	ttl    time.Duration
}

// NewTokenService builds a TokenService. host is stamped as both issuer and
// audience of every minted token and required of every parsed one.
func NewTokenService(secret, host string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), host: host, ttl: ttl}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue mints a signed token for p. All five timing/issuer fields are set
// on every token: iss = aud = host, iat = nbf = now, exp = now + ttl.
func (s *TokenService) Issue(p domain.Principal) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrSigningFailure
	}

	now := time.Now().UTC()
	claims := tokenClaims{
		UserID: p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Role:   string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.host,
			Audience:  jwt.ClaimStrings{s.host},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", domain.ErrSigningFailure
	}
	return token, nil
}

// Parse verifies token and reconstructs the Principal from its claims. The
// Principal is not re-fetched from storage: whatever the token says about
// name, email and role holds until the token expires.
//
// Signature mismatch, malformed structure, clock-window violations and
// issuer/audience mismatches all collapse into domain.ErrInvalidToken so
// callers cannot probe for why a token was rejected.
func (s *TokenService) Parse(token string) (*domain.Principal, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.host),
		jwt.WithAudience(s.host),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Principal{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  role,
	}, nil
}

// IsValid reports whether token would parse successfully.
func (s *TokenService) IsValid(token string) bool {
	_, err := s.Parse(token)
	return err == nil
}

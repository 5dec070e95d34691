package ports

import (
	"time"

	"github.com/greenhouse/plants-api/internal/core/domain"
)

// TokenService mints and verifies the signed bearer credential. It is the
// sole source of truth for whether a presented token can be trusted.
type TokenService interface {
	// Issue mints a signed token carrying p's claims plus the standard
	// iss/aud/iat/nbf/exp fields. Fails with domain.ErrSigningFailure when
	// the signing secret is unavailable.
	Issue(p domain.Principal) (string, error)
	// Parse verifies signature, time window, issuer and audience, and
	// reconstructs the Principal from the embedded claims. Every failure
	// mode collapses to domain.ErrInvalidToken.
	Parse(token string) (*domain.Principal, error)
	// IsValid reports whether Parse would succeed.
	IsValid(token string) bool
	// TTL is the lifetime stamped on issued tokens.
	TTL() time.Duration
}

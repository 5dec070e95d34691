package domain

import "errors"

// ErrSigningFailure means a token could not be minted (signing secret
// missing or unusable). This is a server-side fault, never a caller error.
var ErrSigningFailure = errors.New("token signing failure")

// ErrInvalidToken is the single error for any untrusted token: bad
// signature, malformed structure, wrong issuer or audience, outside its
// [nbf, exp) window. The cause is deliberately not surfaced.
//
// Tokens are trusted on signature alone; there is no server-side session or
// revocation store, so a compromised token stays valid until expiry.
var ErrInvalidToken = errors.New("invalid token")

// Package service defines domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the claims embedded in a session credential.
type SessionClaims struct {
	BeastID int64
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session
// credentials. A credential is a signed, time-bounded bearer token; expiry is
// its only termination path, there is no revocation list.
type TokenService interface {
	// IssueSessionToken mints a 7-day credential for a resolved beast.
	IssueSessionToken(beastID int64) (string, error)

	// IssueShortLivedToken mints a 1-hour credential, used by test routes.
	IssueShortLivedToken(beastID int64) (string, error)

	// ValidateToken checks a credential's signature and validity window.
	ValidateToken(tokenString string) (*SessionClaims, error)

	// SessionTokenDuration returns the validity window of session tokens.
	SessionTokenDuration() time.Duration
}

package service

import (
	"context"
	"time"
)

// AppleIdentity is a verified external identity produced once per sign-in
// attempt. It is consumed immediately by the account resolver and never
// persisted.
type AppleIdentity struct {
	Subject   string    // Apple's stable, provider-scoped user identifier ('sub' claim).
	Email     string    // May be empty; Apple only returns it on first authorization.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// AppleTokenBundle is the provider response from an authorization code
// exchange. The identity token inside still has to be verified.
type AppleTokenBundle struct {
	AccessToken   string
	RefreshToken  string
	IdentityToken string
	ExpiresIn     int
}

// AppleAuthService defines the operations against Apple's identity provider.
// Both operations block on network I/O; callers bound them via context.
type AppleAuthService interface {
	// VerifyIdentityToken checks the assertion's signature against Apple's
	// published keys along with its audience, issuer, and expiry. Accepting an
	// invalid token is a security failure, so every check is mandatory.
	VerifyIdentityToken(ctx context.Context, idToken string) (*AppleIdentity, error)

	// ExchangeAuthorizationCode trades an authorization code for a token
	// bundle, authenticating with a short-lived provider client secret that is
	// never exposed outside this service.
	ExchangeAuthorizationCode(ctx context.Context, code string) (*AppleTokenBundle, error)
}

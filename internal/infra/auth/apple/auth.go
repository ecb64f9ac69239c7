// Package apple implements the external identity client for Sign in with
// Apple: identity token verification, authorization code exchange, and the
// provider-side client secret used to authenticate this server to Apple.
package apple

import (
	"context"
	"crypto/ecdsa"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"preesh/config"
	"preesh/internal/domain/service"
)

const (
	appleIssuer   = "https://appleid.apple.com"
	appleJWKSURL  = "https://appleid.apple.com/auth/keys"
	appleTokenURL = "https://appleid.apple.com/auth/token"

	defaultHTTPTimeout = 10 * time.Second
)

// identityTokenClaims are the claims of an Apple identity token this service
// cares about. Audience, issuer, and expiry live in RegisteredClaims and are
// checked by the parser.
type identityTokenClaims struct {
	Email          string `json:"email"`
	EmailVerified  any    `json:"email_verified"`  // Apple sends either a bool or the string "true".
	IsPrivateEmail any    `json:"is_private_email"`
	jwt.RegisteredClaims
}

// authService implements service.AppleAuthService.
type authService struct {
	clientID    string
	teamID      string
	keyID       string
	redirectURI string
	signingKey  *ecdsa.PrivateKey

	tokenURL string
	jwks     *jwksCache
	client   *http.Client
	logger   *slog.Logger
}

// NewAuthService is the constructor for the Apple identity client. It parses
// the configured PEM signing key once; missing credentials fail construction,
// not individual sign-in requests.
func NewAuthService(cfg *config.Config, logger *slog.Logger) (service.AppleAuthService, error) {
	appleCfg := cfg.AppleAuth
	if appleCfg == nil {
		return nil, errors.New("apple auth configuration is missing")
	}
	if appleCfg.ClientID == "" || appleCfg.TeamID == "" || appleCfg.KeyID == "" || appleCfg.PrivateKey == "" {
		return nil, errors.New("apple client credentials are incomplete")
	}

	signingKey, err := jwt.ParseECPrivateKeyFromPEM([]byte(appleCfg.PrivateKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Apple signing key")
	}

	timeout := appleCfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	client := &http.Client{Timeout: timeout}

	return &authService{
		clientID:    appleCfg.ClientID,
		teamID:      appleCfg.TeamID,
		keyID:       appleCfg.KeyID,
		redirectURI: appleCfg.RedirectURI,
		signingKey:  signingKey,
		tokenURL:    appleTokenURL,
		jwks:        newJWKSCache(appleJWKSURL, client, defaultJWKSCacheTTL),
		client:      client,
		logger:      logger,
	}, nil
}

// VerifyIdentityToken implements service.AppleAuthService. The signature is
// verified against Apple's published keys; audience, issuer, and expiry
// checks are enforced by the parser options, so an invalid token never
// produces an identity.
func (s *authService) VerifyIdentityToken(ctx context.Context, idToken string) (*service.AppleIdentity, error) {
	claims := &identityTokenClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, s.jwks.keyfunc(ctx),
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(appleIssuer),
		jwt.WithAudience(s.clientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		s.logger.Warn("Apple identity token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid identity token")
	}
	if !token.Valid {
		return nil, errors.New("invalid identity token")
	}

	if claims.Subject == "" {
		return nil, errors.New("identity token has no subject")
	}

	identity := &service.AppleIdentity{
		Subject: claims.Subject,
		Email:   claims.Email,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	if identity.Email != "" && !claimBool(claims.EmailVerified) {
		s.logger.Warn("Apple account email is unverified",
			slog.String("subject", identity.Subject),
			slog.Bool("private_relay", claimBool(claims.IsPrivateEmail)))
	}

	s.logger.Info("Apple identity token verified", slog.String("subject", identity.Subject))

	return identity, nil
}

// claimBool normalizes Apple's boolean claims, which arrive either as a JSON
// bool or as the strings "true"/"false".
func claimBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}

	return false
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"preesh/config"
	"preesh/internal/domain/service"
)

const (
	sessionTokenTTL    = 7 * 24 * time.Hour // End-user sessions.
	shortLivedTokenTTL = time.Hour          // Test-route tokens.
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// A single process-wide HS256 secret signs every session credential; the
// credential is opaque to the holder and tamper-evident by signature.
type jwtService struct {
	secret     string
	sessionTTL time.Duration
	shortTTL   time.Duration
}

// NewJWTService is the constructor for jwtService.
// The signing secret is explicit configuration, not ambient process state.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: sessionTokenTTL,
		shortTTL:   shortLivedTokenTTL,
	}, nil
}

// IssueSessionToken creates a 7-day session credential for a resolved beast.
func (s *jwtService) IssueSessionToken(beastID int64) (string, error) {
	return s.signToken(beastID, s.sessionTTL)
}

// IssueShortLivedToken creates a 1-hour credential for test flows.
func (s *jwtService) IssueShortLivedToken(beastID int64) (string, error) {
	return s.signToken(beastID, s.shortTTL)
}

// ValidateToken checks the signature and validity window of a credential and
// returns the embedded claims. Any mutation of the signed payload invalidates
// the signature and fails here.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected session token claims format")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "session token subject missing")
	}
	beastID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "session token subject is not a beast id")
	}

	claims := &service.SessionClaims{BeastID: beastID}
	if issuedAt, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = issuedAt
	}
	if expiresAt, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = expiresAt
	}

	return claims, nil
}

// SessionTokenDuration returns the configured duration for session tokens.
func (s *jwtService) SessionTokenDuration() time.Duration {
	return s.sessionTTL
}

// signToken is a private helper to create a JWT with specific claims.
func (s *jwtService) signToken(beastID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(beastID, 10), // Subject (who the token is for)
		"iat": now.Unix(),                     // Issued At
		"exp": now.Add(ttl).Unix(),            // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

package apple

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// clientSecretTTL is the validity window of the provider client secret.
// Apple caps client secrets at six months; staying at the cap keeps the
// assertion short-lived relative to the signing key without minting one per
// request. This credential authenticates the server to Apple and is distinct
// from the session tokens issued to end users.
const clientSecretTTL = 15777000 * time.Second

// clientSecret mints the ES256-signed assertion Apple requires on the token
// endpoint: issuer is the team identifier, subject the client identifier,
// audience the provider, and the kid header names the registered signing key.
func (s *authService) clientSecret() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.teamID,
		Subject:   s.clientID,
		Audience:  jwt.ClaimStrings{appleIssuer},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(clientSecretTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = s.keyID

	secret, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign Apple client secret")
	}

	return secret, nil
}

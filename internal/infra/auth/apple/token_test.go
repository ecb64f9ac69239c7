package apple

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newExchangeService builds an authService whose token endpoint points at
// the given test server.
func newExchangeService(t *testing.T, tokenURL string) *authService {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	return &authService{
		clientID:    testClientID,
		teamID:      "TEAM123456",
		keyID:       testKeyID,
		redirectURI: "https://example.com/callback",
		signingKey:  key,
		tokenURL:    tokenURL,
		client:      &http.Client{Timeout: time.Second},
		logger:      newDiscardLogger(),
	}
}

func TestExchangeAuthorizationCode_Success(t *testing.T) {
	var gotForm map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"client_id":    r.PostFormValue("client_id"),
			"code":         r.PostFormValue("code"),
			"grant_type":   r.PostFormValue("grant_type"),
			"redirect_uri": r.PostFormValue("redirect_uri"),
		}
		assert.NotEmpty(t, r.PostFormValue("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(appleTokenResponse{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			IDToken:      "identity-token",
			ExpiresIn:    3600,
		})
	}))
	defer server.Close()

	svc := newExchangeService(t, server.URL)

	bundle, err := svc.ExchangeAuthorizationCode(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "identity-token", bundle.IdentityToken)
	assert.Equal(t, "access-token", bundle.AccessToken)
	assert.Equal(t, "refresh-token", bundle.RefreshToken)
	assert.Equal(t, 3600, bundle.ExpiresIn)

	assert.Equal(t, map[string]string{
		"client_id":    testClientID,
		"code":         "auth-code",
		"grant_type":   "authorization_code",
		"redirect_uri": "https://example.com/callback",
	}, gotForm)
}

func TestExchangeAuthorizationCode_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(appleErrorResponse{Error: "invalid_grant"})
	}))
	defer server.Close()

	svc := newExchangeService(t, server.URL)

	_, err := svc.ExchangeAuthorizationCode(context.Background(), "stale-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestExchangeAuthorizationCode_MissingIdentityToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(appleTokenResponse{AccessToken: "access-token"})
	}))
	defer server.Close()

	svc := newExchangeService(t, server.URL)

	_, err := svc.ExchangeAuthorizationCode(context.Background(), "auth-code")
	assert.Error(t, err)
}

package apple

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	defaultJWKSCacheTTL = time.Hour

	// minRefreshInterval bounds how often an unknown kid can trigger a
	// refetch, so forged kids cannot turn every request into a provider
	// round trip.
	minRefreshInterval = time.Minute
)

// jwk is a single JSON Web Key as published by Apple. Apple only serves RSA
// signing keys on its JWKS endpoint.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

// jwksCache fetches Apple's published signing keys and caches them for a TTL.
// Safe for concurrent use; verification holds the read lock only.
type jwksCache struct {
	url    string
	client *http.Client
	ttl    time.Duration

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func newJWKSCache(url string, client *http.Client, ttl time.Duration) *jwksCache {
	if ttl <= 0 {
		ttl = defaultJWKSCacheTTL
	}

	return &jwksCache{
		url:    url,
		client: client,
		ttl:    ttl,
	}
}

// keyfunc returns a jwt.Keyfunc that resolves the token's kid header against
// the cached key set, refreshing it from the provider when stale or when the
// kid is unknown (Apple rotates keys).
func (c *jwksCache) keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("identity token has no kid header")
		}

		return c.getKey(ctx, kid)
	}
}

func (c *jwksCache) getKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, fresh := c.lookupLocked(kid)
	c.mu.RUnlock()

	if key != nil {
		return key, nil
	}

	// An unknown kid on a fresh cache usually means Apple rotated keys, so
	// refetch even before the TTL expires.
	maxAge := c.ttl
	if fresh {
		maxAge = minRefreshInterval
	}
	if err := c.refresh(ctx, maxAge); err != nil {
		return nil, err
	}

	c.mu.RLock()
	key, _ = c.lookupLocked(kid)
	c.mu.RUnlock()

	if key == nil {
		return nil, errors.Errorf("no Apple signing key for kid %q", kid)
	}

	return key, nil
}

// lookupLocked must be called with at least the read lock held.
func (c *jwksCache) lookupLocked(kid string) (key *rsa.PublicKey, fresh bool) {
	fresh = !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl
	if !fresh {
		return nil, false
	}

	return c.keys[kid], true
}

// refresh refetches the key set unless the cached one is younger than maxAge.
// The age check runs under the lock, so a goroutine that waited while another
// refreshed does not fetch again.
func (c *jwksCache) refresh(ctx context.Context, maxAge time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < maxAge {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create JWKS request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to fetch Apple JWKS")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("Apple JWKS fetch failed with status %d", resp.StatusCode)
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return errors.Wrap(err, "failed to decode Apple JWKS response")
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}

		pub, err := rsaPublicKeyFromJWK(k)
		if err != nil {
			return errors.Wrapf(err, "failed to build public key for kid %q", k.Kid)
		}
		keys[k.Kid] = pub
	}

	if len(keys) == 0 {
		return errors.New("Apple JWKS response contained no usable keys")
	}

	c.keys = keys
	c.fetchedAt = time.Now()

	return nil
}

// rsaPublicKeyFromJWK builds an rsa.PublicKey from base64url modulus and exponent.
func rsaPublicKeyFromJWK(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, errors.Wrap(err, "invalid modulus encoding")
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, errors.Wrap(err, "invalid exponent encoding")
	}

	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() || e.Int64() <= 0 {
		return nil, errors.New("invalid public exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(e.Int64()),
	}, nil
}

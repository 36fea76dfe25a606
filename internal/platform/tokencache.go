package platform

import (
	"log"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// TokenCache fronts the secure store for session tokens. Storage
// failures degrade to a cache miss; an expired cached JWT is treated
// as absent and evicted so callers never present a dead token.
type TokenCache struct {
	store SecureStore
}

// NewTokenCache wraps the given secure store.
func NewTokenCache(store SecureStore) *TokenCache {
	return &TokenCache{store: store}
}

// Token returns the cached token under key, or "" when none is usable.
func (c *TokenCache) Token(key string) string {
	v, err := c.store.Get(key)
	if err != nil {
		log.Printf("[platform] secure store read for %q failed: %v", key, err)
		_ = c.store.Delete(key)
		return ""
	}
	if v == "" {
		return ""
	}
	if tokenExpired(v) {
		log.Printf("[platform] cached token under %q expired, evicting", key)
		_ = c.store.Delete(key)
		return ""
	}
	return v
}

// Save stores a token under key. Write failures are logged and
// swallowed; the next Token call simply misses.
func (c *TokenCache) Save(key, value string) {
	if err := c.store.Set(key, value); err != nil {
		log.Printf("[platform] failed to save token under %q: %v", key, err)
	}
}

// tokenExpired reports whether value is a JWT whose exp has passed.
// Opaque (non-JWT) tokens are passed through for the provider to
// judge.
func tokenExpired(value string) bool {
	claims := gojwt.MapClaims{}
	if _, _, err := gojwt.NewParser().ParseUnverified(value, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

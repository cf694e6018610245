package connector

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// tokenSafetyMargin is subtracted from a token's expires_in so dispatch
// refreshes slightly before the connector would reject it.
const tokenSafetyMargin = 30 * time.Second

// TokenCache holds short-lived connector access tokens keyed by
// merchant+connector for the AddAccessToken flow.
type TokenCache struct {
	store *gocache.Cache
}

// NewTokenCache creates a TokenCache with no default TTL; each Set call
// supplies its own expiry derived from the token's expires_in.
func NewTokenCache() *TokenCache {
	return &TokenCache{store: gocache.New(gocache.NoExpiration, time.Minute)}
}

func tokenKey(merchantID, merchantConnectorID string) string {
	return merchantID + ":" + merchantConnectorID
}

// Get returns the cached token for (merchantID, merchantConnectorID), or
// false if absent or expired.
func (c *TokenCache) Get(merchantID, merchantConnectorID string) (string, bool) {
	v, ok := c.store.Get(tokenKey(merchantID, merchantConnectorID))
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Set stores token, expiring it expiresInSeconds minus a safety margin
// from now. A margin that would produce a non-positive TTL leaves the
// token uncached (effectively forcing a refresh next call).
func (c *TokenCache) Set(merchantID, merchantConnectorID, token string, expiresInSeconds int) {
	ttl := time.Duration(expiresInSeconds)*time.Second - tokenSafetyMargin
	if ttl <= 0 {
		return
	}
	c.store.Set(tokenKey(merchantID, merchantConnectorID), token, ttl)
}

// Invalidate drops the cached token, forcing the next call to refresh.
// Used when the primary flow comes back 401 despite a cached token.
func (c *TokenCache) Invalidate(merchantID, merchantConnectorID string) {
	c.store.Delete(tokenKey(merchantID, merchantConnectorID))
}

// ErrAccessTokenUnavailable describes a connector that requires an
// access token for which none could be obtained. The Dispatcher does not
// return it; a failed token fetch surfaces as the wrapped fetch error.
type ErrAccessTokenUnavailable struct {
	ConnectorName string
}

func (e ErrAccessTokenUnavailable) Error() string {
	return fmt.Sprintf("connector %s: unable to obtain access token", e.ConnectorName)
}

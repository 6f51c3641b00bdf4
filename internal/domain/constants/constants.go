// Package constants collects string identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Rate limit stores
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Session cookies
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	// RefreshCookiePath scopes the refresh cookie to the rotation endpoint only.
	RefreshCookiePath = "/api/auth/refresh"
)

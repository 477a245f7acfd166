// Package constants holds provider names shared by config and infra wiring.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Rate limit store providers
const (
	RateLimitProviderMemory = "memory"
	RateLimitProviderRedis  = "redis"
)

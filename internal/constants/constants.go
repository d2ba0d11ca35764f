package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

const (
	// CacheSize bounds the in-memory payload cache (entries, not bytes).
	CacheSize       = 1024
	DefaultCacheTTL = 1 * time.Hour
)

const (
	// PokeAPI asks for polite usage; one burst of requests per battle is fine
	// but sustained traffic is throttled client-side.
	APIRequestsPerSecond = 20
	APIRequestBurst      = 40
)

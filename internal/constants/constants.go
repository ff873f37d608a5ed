// Package constants defines application-wide constants and default values.
package constants

import "time"

const (
	AppName    = "cinefind"
	AppVersion = "1.0.0"

	// Default configuration values
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Pagination
	DefaultPageSize = 24
	MinPageSize     = 1
	MaxPageSize     = 100

	// Cache settings
	DefaultCacheSize = 1000
	SearchCacheTTL   = 12 * time.Hour
	PosterCacheTTL   = 24 * time.Hour
	PersonCacheTTL   = 1 * time.Hour

	// "Now playing" listing window: trailing year up to the current date
	NowPlayingWindow = 365 * 24 * time.Hour

	// Languages
	DefaultLanguage   = "en-US"
	ReferenceLanguage = "en-US"

	// Sentinel language segment for poster cache keys when no language is requested
	PosterAnyLanguage = "any"

	// TMDB movie ID that can never match a stored movie. Used to force an
	// actor-filtered search to match nothing when the actor lookup fails
	// or yields no candidate (fail-closed).
	ImpossibleTMDBID = -1

	// Rate limiting
	TMDBRateLimit = 20 // requests per second
	TMDBRateBurst = 5  // burst capacity
)

// Package services implements the request-level use cases over the
// catalog store, the cache and the TMDB API, plus the dependency
// injection container wiring them together.
package services

import (
	"github.com/cinefind/cinefind/internal/cache"
	"github.com/cinefind/cinefind/internal/database"
	"github.com/cinefind/cinefind/internal/models"
	"github.com/cinefind/cinefind/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	TMDB    TMDBService
	Store   database.MovieStore
	Cache   cache.Cache
	Logger  logger.Logger
	Search  *SearchService
	Catalog *CatalogService
	Sync    *SyncService
}

// TMDBService defines the interface for TMDB API operations.
type TMDBService interface {
	SearchPerson(name string) (*models.TMDBPerson, error)
	GetPersonMovieIDs(personID int) ([]int, error)
	GetNowPlaying(page int, language string) (*models.TMDBMovieListResponse, error)
	GetMovieDetails(tmdbID int, language string) (*models.TMDBMovieDetails, error)
	GetMovieCredits(tmdbID int, language string) (*models.TMDBCreditsResponse, error)
	GetMovieVideos(tmdbID int, language string) (*models.TMDBVideosResponse, error)
	GetGenres(language string) ([]models.TMDBGenre, error)
}

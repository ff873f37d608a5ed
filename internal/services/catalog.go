package services

import (
	"sort"

	"github.com/cinefind/cinefind/internal/database"
	"github.com/cinefind/cinefind/internal/l10n"
	"github.com/cinefind/cinefind/internal/models"
	"github.com/cinefind/cinefind/pkg/logger"
)

// CatalogService serves the lookup data the UI builds its filter
// controls from: the localized genre list and the best-rated posters.
type CatalogService struct {
	store             database.MovieStore
	logger            logger.Logger
	referenceLanguage string
}

func NewCatalogService(store database.MovieStore, log logger.Logger, referenceLanguage string) *CatalogService {
	return &CatalogService{
		store:             store,
		logger:            log,
		referenceLanguage: referenceLanguage,
	}
}

// ListGenres returns all genres localized for language, ordered by name.
// Resolution falls back from the requested language to the reference
// language, then to any available translation, then to a synthesized
// "Genre <id>" name.
func (c *CatalogService) ListGenres(language string) ([]models.GenreOption, error) {
	genres, err := c.store.ListGenres()
	if err != nil {
		return nil, err
	}

	options := make([]models.GenreOption, 0, len(genres))
	for i := range genres {
		localized := l10n.LocalizeGenre(&genres[i], language, c.referenceLanguage)
		options = append(options, models.GenreOption{
			ID:     localized.ID,
			TMDBID: localized.TMDBID,
			Name:   localized.Name,
		})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})

	return options, nil
}

// BestRatedPosters returns up to limit poster URLs, optionally
// restricted to one language's translations. Caching happens in the
// store.
func (c *CatalogService) BestRatedPosters(limit int, language *string) ([]string, error) {
	return c.store.BestRatedPosters(limit, language)
}

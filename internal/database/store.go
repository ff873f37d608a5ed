package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cinefind/cinefind/internal/cache"
	"github.com/cinefind/cinefind/internal/constants"
	apperrors "github.com/cinefind/cinefind/internal/errors"
	"github.com/cinefind/cinefind/internal/l10n"
	"github.com/cinefind/cinefind/internal/models"
	"github.com/cinefind/cinefind/pkg/logger"
)

// MovieStore defines the query and write-through surface over the catalog.
// Absent-by-identifier lookups return (nil, nil), never an error.
// Upserts are idempotent; the store performs no retries.
type MovieStore interface {
	FindByTMDBID(tmdbID int) (*models.Movie, error)
	FindFullByID(id uint) (*models.Movie, error)
	FindLocalizedByID(id uint, language string) (*models.LocalizedMovie, error)
	ListFull(filter models.MovieFilter, sort models.SortSpec, offset, limit int) ([]models.Movie, error)
	ListLocalized(language string, filter models.MovieFilter, sort models.SortSpec, offset, limit int) ([]models.LocalizedMovie, error)
	Count(filter models.MovieFilter) (int64, error)

	UpsertMovie(m *models.Movie) error
	UpsertTranslation(t *models.MovieTranslation) error
	UpsertGenre(g *models.Genre) error
	UpsertGenreTranslation(t *models.GenreTranslation) error
	ConnectGenres(movieID uint, genreTMDBIDs []int) error
	UpsertAllTrailers(movieID uint, trailers []models.Trailer) error
	UpsertActor(a *models.Actor) error
	UpsertActorTranslation(t *models.ActorTranslation) error
	UpsertCastCredit(c *models.CastCredit) error

	ListGenres() ([]models.Genre, error)
	BestRatedPosters(limit int, language *string) ([]string, error)
}

// Store implements MovieStore over GORM with a cache in front of the
// poster lookup.
type Store struct {
	db     *gorm.DB
	cache  cache.Cache
	logger logger.Logger
}

func NewStore(db *gorm.DB, c cache.Cache, log logger.Logger) *Store {
	return &Store{db: db, cache: c, logger: log}
}

// fully applies the "fully populated movie" query profile: the movie's
// own translations, genre translations, trailers, and cast ordered by
// display order with each actor's translations. Both single-fetch and
// list-fetch paths reuse it.
func (s *Store) fully(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Translations").
		Preload("Trailers").
		Preload("Genres.Translations").
		Preload("Cast", func(db *gorm.DB) *gorm.DB {
			return db.Order("cast_credits.ordinal ASC")
		}).
		Preload("Cast.Actor.Translations")
}

func (s *Store) FindByTMDBID(tmdbID int) (*models.Movie, error) {
	var movie models.Movie
	err := s.db.Where("tmdb_id = ?", tmdbID).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("movie lookup by TMDB ID failed", err)
	}
	return &movie, nil
}

func (s *Store) FindFullByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	err := s.fully(s.db).First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("movie lookup failed", err)
	}
	return &movie, nil
}

func (s *Store) FindLocalizedByID(id uint, language string) (*models.LocalizedMovie, error) {
	movie, err := s.FindFullByID(id)
	if err != nil || movie == nil {
		return nil, err
	}
	localized := l10n.LocalizeMovie(movie, language)
	return &localized, nil
}

// filtered translates a MovieFilter into a query. Joins against the
// translation and genre tables can duplicate movie rows; callers apply
// the matching Distinct.
func (s *Store) filtered(f models.MovieFilter) *gorm.DB {
	q := s.db.Model(&models.Movie{})

	if f.ReleasedFrom != nil {
		q = q.Where("movies.release_date >= ?", *f.ReleasedFrom)
	}
	if f.ReleasedTo != nil {
		q = q.Where("movies.release_date <= ?", *f.ReleasedTo)
	}

	if f.Query != "" {
		pattern := "%" + strings.ToLower(f.Query) + "%"
		q = q.Joins("JOIN movie_translations AS mt ON mt.movie_id = movies.id").
			Where("LOWER(mt.title) LIKE ? OR LOWER(mt.original_title) LIKE ?", pattern, pattern)
	}

	if len(f.GenreTMDBIDs) > 0 {
		q = q.Joins("JOIN movie_genres AS mg ON mg.movie_id = movies.id").
			Joins("JOIN genres AS g ON g.id = mg.genre_id").
			Where("g.tmdb_id IN ?", f.GenreTMDBIDs)
	}

	if f.TMDBIDs != nil {
		q = q.Where("movies.tmdb_id IN ?", f.TMDBIDs)
	}

	return q
}

func sortClause(sort models.SortSpec) string {
	column := map[models.SortField]string{
		models.SortByRating:      "movies.rating",
		models.SortByVotes:       "movies.votes",
		models.SortByReleaseDate: "movies.release_date",
	}[sort.Field]
	if column == "" {
		column = "movies.rating"
	}

	direction := "DESC"
	if sort.Direction == models.SortAsc {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s", column, direction)
}

func (s *Store) ListFull(filter models.MovieFilter, sort models.SortSpec, offset, limit int) ([]models.Movie, error) {
	var movies []models.Movie
	err := s.fully(s.filtered(filter).Distinct("movies.*")).
		Order(sortClause(sort)).
		Offset(offset).
		Limit(limit).
		Find(&movies).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("movie listing failed", err)
	}
	return movies, nil
}

func (s *Store) ListLocalized(language string, filter models.MovieFilter, sort models.SortSpec, offset, limit int) ([]models.LocalizedMovie, error) {
	movies, err := s.ListFull(filter, sort, offset, limit)
	if err != nil {
		return nil, err
	}

	localized := make([]models.LocalizedMovie, 0, len(movies))
	for i := range movies {
		localized = append(localized, l10n.LocalizeMovie(&movies[i], language))
	}
	return localized, nil
}

func (s *Store) Count(filter models.MovieFilter) (int64, error) {
	var total int64
	err := s.filtered(filter).Distinct("movies.id").Count(&total).Error
	if err != nil {
		return 0, apperrors.NewDatabaseError("movie count failed", err)
	}
	return total, nil
}

// UpsertMovie creates or updates a movie keyed by its TMDB ID. On
// conflict only the catalog attributes are updated. The movie's primary
// key is populated on return.
func (s *Store) UpsertMovie(m *models.Movie) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tmdb_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"imdb_id", "rating", "votes", "release_date",
			"runtime", "status", "original_language", "updated_at",
		}),
	}).Create(&models.Movie{
		TMDBID:           m.TMDBID,
		IMDBID:           m.IMDBID,
		Rating:           m.Rating,
		Votes:            m.Votes,
		ReleaseDate:      m.ReleaseDate,
		Runtime:          m.Runtime,
		Status:           m.Status,
		OriginalLanguage: m.OriginalLanguage,
	}).Error
	if err != nil {
		return apperrors.NewDatabaseError("movie upsert failed", err)
	}

	// Re-read by the natural key: on conflict the insert ID is not
	// meaningful, so the canonical row is fetched fresh.
	var canonical models.Movie
	if err := s.db.Where("tmdb_id = ?", m.TMDBID).First(&canonical).Error; err != nil {
		return apperrors.NewDatabaseError("movie upsert readback failed", err)
	}
	*m = canonical
	return nil
}

func (s *Store) UpsertTranslation(t *models.MovieTranslation) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "movie_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "original_title", "description", "poster_url",
		}),
	}).Create(t).Error
	if err != nil {
		return apperrors.NewDatabaseError("movie translation upsert failed", err)
	}
	return nil
}

func (s *Store) UpsertGenre(g *models.Genre) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tmdb_id"}},
		DoNothing: true,
	}).Create(&models.Genre{TMDBID: g.TMDBID}).Error
	if err != nil {
		return apperrors.NewDatabaseError("genre upsert failed", err)
	}

	var canonical models.Genre
	if err := s.db.Where("tmdb_id = ?", g.TMDBID).First(&canonical).Error; err != nil {
		return apperrors.NewDatabaseError("genre upsert readback failed", err)
	}
	*g = canonical
	return nil
}

func (s *Store) UpsertGenreTranslation(t *models.GenreTranslation) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "genre_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(t).Error
	if err != nil {
		return apperrors.NewDatabaseError("genre translation upsert failed", err)
	}
	return nil
}

// ConnectGenres attaches the genres with the given TMDB IDs to a movie.
// Unknown genre IDs are skipped; existing associations are kept.
func (s *Store) ConnectGenres(movieID uint, genreTMDBIDs []int) error {
	if len(genreTMDBIDs) == 0 {
		return nil
	}

	var genres []models.Genre
	if err := s.db.Where("tmdb_id IN ?", genreTMDBIDs).Find(&genres).Error; err != nil {
		return apperrors.NewDatabaseError("genre lookup failed", err)
	}
	if len(genres) == 0 {
		return nil
	}

	movie := models.Movie{ID: movieID}
	if err := s.db.Model(&movie).Association("Genres").Append(&genres); err != nil {
		return apperrors.NewDatabaseError("genre association failed", err)
	}
	return nil
}

// UpsertAllTrailers writes a movie's trailers, keyed by (movie, URL).
func (s *Store) UpsertAllTrailers(movieID uint, trailers []models.Trailer) error {
	if len(trailers) == 0 {
		return nil
	}

	for i := range trailers {
		trailers[i].MovieID = movieID
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{"language", "title", "video_key", "site"}),
	}).Create(&trailers).Error
	if err != nil {
		return apperrors.NewDatabaseError("trailer upsert failed", err)
	}
	return nil
}

func (s *Store) UpsertActor(a *models.Actor) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tmdb_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"imdb_id", "popularity", "birthday", "deathday",
			"place_of_birth", "profile_url",
		}),
	}).Create(&models.Actor{
		TMDBID:       a.TMDBID,
		IMDBID:       a.IMDBID,
		Popularity:   a.Popularity,
		Birthday:     a.Birthday,
		Deathday:     a.Deathday,
		PlaceOfBirth: a.PlaceOfBirth,
		ProfileURL:   a.ProfileURL,
	}).Error
	if err != nil {
		return apperrors.NewDatabaseError("actor upsert failed", err)
	}

	var canonical models.Actor
	if err := s.db.Where("tmdb_id = ?", a.TMDBID).First(&canonical).Error; err != nil {
		return apperrors.NewDatabaseError("actor upsert readback failed", err)
	}
	*a = canonical
	return nil
}

func (s *Store) UpsertActorTranslation(t *models.ActorTranslation) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "actor_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "biography"}),
	}).Create(t).Error
	if err != nil {
		return apperrors.NewDatabaseError("actor translation upsert failed", err)
	}
	return nil
}

func (s *Store) UpsertCastCredit(c *models.CastCredit) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "actor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"character", "ordinal"}),
	}).Create(c).Error
	if err != nil {
		return apperrors.NewDatabaseError("cast credit upsert failed", err)
	}
	return nil
}

func (s *Store) ListGenres() ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.db.Preload("Translations").Order("tmdb_id ASC").Find(&genres).Error; err != nil {
		return nil, apperrors.NewDatabaseError("genre listing failed", err)
	}
	return genres, nil
}

// BestRatedPosters returns up to limit poster URLs from the best rated
// movies, reading the translation table directly so no movie graph is
// loaded. Results are cached for 24 hours per language; the key uses a
// sentinel segment when no language is requested.
func (s *Store) BestRatedPosters(limit int, language *string) ([]string, error) {
	langKey := constants.PosterAnyLanguage
	if language != nil {
		langKey = *language
	}
	cacheKey := fmt.Sprintf("posters:%s:%d", langKey, limit)

	if raw, found := s.cache.Get(cacheKey); found {
		var cached []string
		if err := json.Unmarshal(raw, &cached); err == nil {
			s.logger.Debugf("[MovieStore] poster cache hit for %s", cacheKey)
			return cached, nil
		}
	}

	q := s.db.Model(&models.MovieTranslation{}).
		Joins("JOIN movies ON movies.id = movie_translations.movie_id").
		Where("movie_translations.poster_url IS NOT NULL").
		Order("movies.rating DESC, movies.votes DESC").
		Limit(limit)
	if language != nil {
		q = q.Where("movie_translations.language = ?", *language)
	}

	var rows []*string
	if err := q.Pluck("movie_translations.poster_url", &rows).Error; err != nil {
		return nil, apperrors.NewDatabaseError("poster listing failed", err)
	}

	posters := make([]string, 0, len(rows))
	for _, url := range rows {
		if url == nil || *url == "" {
			continue
		}
		posters = append(posters, *url)
	}

	if raw, err := json.Marshal(posters); err == nil {
		s.cache.Set(cacheKey, raw, constants.PosterCacheTTL)
	}

	return posters, nil
}

var _ MovieStore = (*Store)(nil)

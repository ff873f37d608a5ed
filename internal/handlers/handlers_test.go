package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gorm.io/driver/sqlite"

	"github.com/cinefind/cinefind/internal/cache"
	"github.com/cinefind/cinefind/internal/config"
	"github.com/cinefind/cinefind/internal/database"
	"github.com/cinefind/cinefind/internal/models"
	"github.com/cinefind/cinefind/internal/services"
	"github.com/cinefind/cinefind/pkg/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := logger.New()
	c := cache.NewLRU(100)
	store := database.NewStore(db, c, log)

	container := &services.Container{
		Store:   store,
		Cache:   c,
		Logger:  log,
		Search:  services.NewSearchService(store, c, failingTMDB{}, log, "en-US"),
		Catalog: services.NewCatalogService(store, log, "en-US"),
	}

	cfg := &config.Config{DefaultLanguage: "en-US"}
	handler := New(container, cfg)

	r := gin.New()
	handler.RegisterRoutes(r)
	return r, store
}

// failingTMDB stands in for the external API; the routes under test
// never reach it.
type failingTMDB struct{}

func (failingTMDB) SearchPerson(string) (*models.TMDBPerson, error) { return nil, nil }
func (failingTMDB) GetPersonMovieIDs(int) ([]int, error)            { return nil, nil }
func (failingTMDB) GetNowPlaying(int, string) (*models.TMDBMovieListResponse, error) {
	return nil, nil
}
func (failingTMDB) GetMovieDetails(int, string) (*models.TMDBMovieDetails, error)   { return nil, nil }
func (failingTMDB) GetMovieCredits(int, string) (*models.TMDBCreditsResponse, error) { return nil, nil }
func (failingTMDB) GetMovieVideos(int, string) (*models.TMDBVideosResponse, error)  { return nil, nil }
func (failingTMDB) GetGenres(string) ([]models.TMDBGenre, error)                    { return nil, nil }

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSearchEndpointEmptyCatalog(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := get(r, "/api/movies")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope models.PaginatedMovies
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.EqualValues(t, 0, envelope.Total)
	assert.Equal(t, 1, envelope.TotalPages)
	assert.Equal(t, 24, envelope.PageSize)
}

func TestSearchEndpointBadSortToken(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := get(r, "/api/movies?sort=bogus")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestMovieEndpoint(t *testing.T) {
	r, store := setupTestRouter(t)

	movie := &models.Movie{TMDBID: 550, Rating: 8.4}
	require.NoError(t, store.UpsertMovie(movie))
	require.NoError(t, store.UpsertTranslation(&models.MovieTranslation{
		MovieID: movie.ID, Language: "en-US", Title: "Fight Club",
	}))

	w := get(r, "/api/movies/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fight Club")

	w = get(r, "/api/movies/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/api/movies/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenresEndpoint(t *testing.T) {
	r, store := setupTestRouter(t)

	genre := &models.Genre{TMDBID: 18}
	require.NoError(t, store.UpsertGenre(genre))
	require.NoError(t, store.UpsertGenreTranslation(&models.GenreTranslation{
		GenreID: genre.ID, Language: "en-US", Name: "Drama",
	}))

	w := get(r, "/api/genres")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Drama")
}

func TestPostersEndpoint(t *testing.T) {
	r, store := setupTestRouter(t)

	movie := &models.Movie{TMDBID: 1, Rating: 9}
	require.NoError(t, store.UpsertMovie(movie))
	poster := "/poster.jpg"
	require.NoError(t, store.UpsertTranslation(&models.MovieTranslation{
		MovieID: movie.ID, Language: "en-US", Title: "Movie", PosterURL: &poster,
	}))

	w := get(r, "/api/posters?limit=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/poster.jpg")
}

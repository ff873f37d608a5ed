package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cinefind/cinefind/internal/cache"
	"github.com/cinefind/cinefind/internal/constants"
	apperrors "github.com/cinefind/cinefind/internal/errors"
	"github.com/cinefind/cinefind/internal/models"
	"github.com/cinefind/cinefind/pkg/logger"
	"github.com/cinefind/cinefind/pkg/ratelimiter"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// TMDB is the client for the TMDB metadata API. Person lookups are
// cached because the search path hits them on every actor-filtered
// request.
type TMDB struct {
	apiKey      string
	baseURL     string
	cache       cache.Cache
	rateLimiter *ratelimiter.TokenBucket
	httpClient  *http.Client
	logger      logger.Logger
}

func NewTMDB(apiKey string, c cache.Cache, log logger.Logger) *TMDB {
	return &TMDB{
		apiKey:      apiKey,
		baseURL:     tmdbBaseURL,
		cache:       c,
		rateLimiter: ratelimiter.NewTokenBucket(constants.TMDBRateLimit, constants.TMDBRateBurst),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: log,
	}
}

// NewTMDBWithBaseURL is used by tests to point the client at a local server.
func NewTMDBWithBaseURL(apiKey, baseURL string, c cache.Cache, log logger.Logger) *TMDB {
	t := NewTMDB(apiKey, c, log)
	t.baseURL = baseURL
	return t
}

// SearchPerson returns the first person candidate for name, or nil when
// the search yields no results. Only the top candidate is considered;
// disambiguation of common names is left to the caller's product layer.
func (t *TMDB) SearchPerson(name string) (*models.TMDBPerson, error) {
	cacheKey := fmt.Sprintf("tmdb:person-search:%s", name)
	if raw, found := t.cache.Get(cacheKey); found {
		var cached models.TMDBPersonSearchResponse
		if err := json.Unmarshal(raw, &cached); err == nil {
			return firstPerson(&cached), nil
		}
	}

	query := url.Values{}
	query.Set("query", name)

	var resp models.TMDBPersonSearchResponse
	if err := t.getJSON("/search/person", query, &resp); err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(&resp); err == nil {
		t.cache.Set(cacheKey, raw, constants.PersonCacheTTL)
	}

	return firstPerson(&resp), nil
}

func firstPerson(resp *models.TMDBPersonSearchResponse) *models.TMDBPerson {
	if len(resp.Results) == 0 {
		return nil
	}
	return &resp.Results[0]
}

// GetPersonMovieIDs returns the TMDB IDs of all movies a person is
// credited in.
func (t *TMDB) GetPersonMovieIDs(personID int) ([]int, error) {
	cacheKey := fmt.Sprintf("tmdb:person-credits:%d", personID)
	if raw, found := t.cache.Get(cacheKey); found {
		var cached []int
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	var resp models.TMDBPersonCreditsResponse
	if err := t.getJSON(fmt.Sprintf("/person/%d/movie_credits", personID), nil, &resp); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(resp.Cast))
	for _, credit := range resp.Cast {
		ids = append(ids, credit.ID)
	}

	if raw, err := json.Marshal(ids); err == nil {
		t.cache.Set(cacheKey, raw, constants.PersonCacheTTL)
	}

	return ids, nil
}

func (t *TMDB) GetNowPlaying(page int, language string) (*models.TMDBMovieListResponse, error) {
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("language", language)

	var resp models.TMDBMovieListResponse
	if err := t.getJSON("/movie/now_playing", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (t *TMDB) GetMovieDetails(tmdbID int, language string) (*models.TMDBMovieDetails, error) {
	query := url.Values{}
	query.Set("language", language)

	var resp models.TMDBMovieDetails
	if err := t.getJSON(fmt.Sprintf("/movie/%d", tmdbID), query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (t *TMDB) GetMovieCredits(tmdbID int, language string) (*models.TMDBCreditsResponse, error) {
	query := url.Values{}
	query.Set("language", language)

	var resp models.TMDBCreditsResponse
	if err := t.getJSON(fmt.Sprintf("/movie/%d/credits", tmdbID), query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (t *TMDB) GetMovieVideos(tmdbID int, language string) (*models.TMDBVideosResponse, error) {
	query := url.Values{}
	query.Set("language", language)

	var resp models.TMDBVideosResponse
	if err := t.getJSON(fmt.Sprintf("/movie/%d/videos", tmdbID), query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (t *TMDB) GetGenres(language string) ([]models.TMDBGenre, error) {
	query := url.Values{}
	query.Set("language", language)

	var resp models.TMDBGenreListResponse
	if err := t.getJSON("/genre/movie/list", query, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// getJSON performs a rate-limited GET against the TMDB API and decodes
// the response into out.
func (t *TMDB) getJSON(path string, query url.Values, out interface{}) error {
	if t.apiKey == "" {
		return apperrors.NewTMDBError("TMDB API key not configured", nil)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", t.apiKey)

	t.rateLimiter.Wait()

	apiURL := fmt.Sprintf("%s%s?%s", t.baseURL, path, query.Encode())
	t.logger.Debugf("[TMDB] GET %s", path)

	resp, err := t.httpClient.Get(apiURL)
	if err != nil {
		return apperrors.NewTMDBError(fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.NewTMDBError(fmt.Sprintf("TMDB API error on %s: status %d", path, resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewTMDBError(fmt.Sprintf("failed to decode response from %s", path), err)
	}

	return nil
}

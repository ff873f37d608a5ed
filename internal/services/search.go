package services

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cinefind/cinefind/internal/cache"
	"github.com/cinefind/cinefind/internal/constants"
	"github.com/cinefind/cinefind/internal/database"
	"github.com/cinefind/cinefind/internal/models"
	"github.com/cinefind/cinefind/pkg/logger"
)

// SearchService is the search use case: it normalizes caller filters,
// serves from the cache when possible, and otherwise resolves the filter
// set against the store (calling out to TMDB for actor filtering) before
// writing the envelope back with a TTL.
type SearchService struct {
	store           database.MovieStore
	cache           cache.Cache
	tmdb            TMDBService
	logger          logger.Logger
	defaultLanguage string
	ttl             time.Duration

	// now is injectable so tests can pin the listing window
	now func() time.Time
}

func NewSearchService(store database.MovieStore, c cache.Cache, tmdb TMDBService, log logger.Logger, defaultLanguage string) *SearchService {
	return &SearchService{
		store:           store,
		cache:           c,
		tmdb:            tmdb,
		logger:          log,
		defaultLanguage: defaultLanguage,
		ttl:             constants.SearchCacheTTL,
		now:             time.Now,
	}
}

// Search runs a filtered, sorted, paginated catalog query. Repeated
// calls with identical filters inside the TTL window are served from
// the cache without touching the store.
func (s *SearchService) Search(filters models.MovieFilters) (*models.PaginatedMovies, error) {
	query := strings.TrimSpace(filters.Query)
	actorQuery := strings.TrimSpace(filters.ActorQuery)

	language := filters.Language
	if language == "" {
		language = s.defaultLanguage
	}

	sortToken := filters.Sort
	if sortToken == "" {
		sortToken = "rating.desc"
	}
	spec, err := models.ParseSortToken(sortToken)
	if err != nil {
		return nil, err
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize == 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize < constants.MinPageSize {
		pageSize = constants.MinPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	cacheKey := searchCacheKey(language, query, actorQuery, spec, filters.GenreIDs)
	if raw, found := s.cache.Get(cacheKey); found {
		var cached models.PaginatedMovies
		if err := json.Unmarshal(raw, &cached); err == nil {
			s.logger.Debugf("[Search] cache hit for %s", cacheKey)
			return &cached, nil
		}
	}

	nowTime := s.now()
	from := nowTime.Add(-constants.NowPlayingWindow)
	filter := models.MovieFilter{
		Query:        query,
		GenreTMDBIDs: filters.GenreIDs,
		ReleasedFrom: &from,
		ReleasedTo:   &nowTime,
	}

	if actorQuery != "" {
		filter.TMDBIDs = s.resolveActorMovies(actorQuery)
	}

	offset := (page - 1) * pageSize

	type listOutcome struct {
		items []models.LocalizedMovie
		err   error
	}
	listCh := make(chan listOutcome, 1)
	go func() {
		items, listErr := s.store.ListLocalized(language, filter, spec, offset, pageSize)
		listCh <- listOutcome{items: items, err: listErr}
	}()

	total, countErr := s.store.Count(filter)
	listed := <-listCh

	if listed.err != nil {
		return nil, listed.err
	}
	if countErr != nil {
		return nil, countErr
	}

	items := listed.items
	if items == nil {
		items = []models.LocalizedMovie{}
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	envelope := &models.PaginatedMovies{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	if raw, err := json.Marshal(envelope); err == nil {
		s.cache.Set(cacheKey, raw, s.ttl)
	}

	return envelope, nil
}

// resolveActorMovies turns an actor name into the TMDB IDs of that
// actor's filmography, taking only the top search candidate. Any failure
// or an empty result restricts the filter to the impossible ID: an actor
// filter must never silently widen into "no actor filter".
func (s *SearchService) resolveActorMovies(name string) []int {
	person, err := s.tmdb.SearchPerson(name)
	if err != nil {
		s.logger.Warnf("[Search] actor search for %q failed, matching nothing: %v", name, err)
		return []int{constants.ImpossibleTMDBID}
	}
	if person == nil {
		s.logger.Debugf("[Search] no actor candidate for %q, matching nothing", name)
		return []int{constants.ImpossibleTMDBID}
	}

	ids, err := s.tmdb.GetPersonMovieIDs(person.ID)
	if err != nil {
		s.logger.Warnf("[Search] credits lookup for %q (TMDB %d) failed, matching nothing: %v", name, person.ID, err)
		return []int{constants.ImpossibleTMDBID}
	}
	if len(ids) == 0 {
		return []int{constants.ImpossibleTMDBID}
	}

	return ids
}

// searchCacheKey digests the semantic filter set, namespaced by target
// language. Genre IDs are sorted first so differing orderings of the
// same selection share one entry.
func searchCacheKey(language, query, actorQuery string, spec models.SortSpec, genreIDs []int) string {
	ids := append([]int(nil), genreIDs...)
	sort.Ints(ids)

	idTokens := make([]string, 0, len(ids))
	for _, id := range ids {
		idTokens = append(idTokens, strconv.Itoa(id))
	}

	fingerprint := strings.Join([]string{
		query,
		actorQuery,
		spec.Token(),
		strings.Join(idTokens, ","),
	}, "|")

	digest := sha256.Sum256([]byte(fingerprint))
	return fmt.Sprintf("search:%s:%x", language, digest)
}

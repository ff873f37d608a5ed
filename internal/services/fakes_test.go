package services

// Hand-rolled fakes for the store and the TMDB client, shared by the
// service tests.

import (
	"github.com/cinefind/cinefind/internal/errors"
	"github.com/cinefind/cinefind/internal/models"
)

type fakeStore struct {
	items  []models.LocalizedMovie
	total  int64
	genres []models.Genre

	listCalls  int
	countCalls int

	lastLanguage string
	lastFilter   models.MovieFilter
	lastSort     models.SortSpec
	lastOffset   int
	lastLimit    int

	upsertedMovies       []models.Movie
	upsertedTranslations []models.MovieTranslation
	upsertedGenres       []models.Genre
	upsertedGenreTrans   []models.GenreTranslation
	upsertedActors       []models.Actor
	upsertedActorTrans   []models.ActorTranslation
	upsertedCredits      []models.CastCredit
	upsertedTrailers     []models.Trailer
	connectedGenres      map[uint][]int

	err error
}

func newFakeStore() *fakeStore {
	return &fakeStore{connectedGenres: map[uint][]int{}}
}

func (f *fakeStore) FindByTMDBID(tmdbID int) (*models.Movie, error) {
	for i := range f.upsertedMovies {
		if f.upsertedMovies[i].TMDBID == tmdbID {
			return &f.upsertedMovies[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindFullByID(id uint) (*models.Movie, error) { return nil, nil }

func (f *fakeStore) FindLocalizedByID(id uint, language string) (*models.LocalizedMovie, error) {
	return nil, nil
}

func (f *fakeStore) ListFull(filter models.MovieFilter, sort models.SortSpec, offset, limit int) ([]models.Movie, error) {
	return nil, f.err
}

func (f *fakeStore) ListLocalized(language string, filter models.MovieFilter, sort models.SortSpec, offset, limit int) ([]models.LocalizedMovie, error) {
	f.listCalls++
	f.lastLanguage = language
	f.lastFilter = filter
	f.lastSort = sort
	f.lastOffset = offset
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if filter.TMDBIDs != nil && len(filter.TMDBIDs) == 1 && filter.TMDBIDs[0] < 0 {
		return nil, nil
	}
	return f.items, nil
}

func (f *fakeStore) Count(filter models.MovieFilter) (int64, error) {
	f.countCalls++
	if f.err != nil {
		return 0, f.err
	}
	if filter.TMDBIDs != nil && len(filter.TMDBIDs) == 1 && filter.TMDBIDs[0] < 0 {
		return 0, nil
	}
	return f.total, nil
}

func (f *fakeStore) UpsertMovie(m *models.Movie) error {
	m.ID = uint(len(f.upsertedMovies) + 1)
	f.upsertedMovies = append(f.upsertedMovies, *m)
	return nil
}

func (f *fakeStore) UpsertTranslation(t *models.MovieTranslation) error {
	f.upsertedTranslations = append(f.upsertedTranslations, *t)
	return nil
}

func (f *fakeStore) UpsertGenre(g *models.Genre) error {
	g.ID = uint(g.TMDBID)
	f.upsertedGenres = append(f.upsertedGenres, *g)
	return nil
}

func (f *fakeStore) UpsertGenreTranslation(t *models.GenreTranslation) error {
	f.upsertedGenreTrans = append(f.upsertedGenreTrans, *t)
	return nil
}

func (f *fakeStore) ConnectGenres(movieID uint, genreTMDBIDs []int) error {
	f.connectedGenres[movieID] = genreTMDBIDs
	return nil
}

func (f *fakeStore) UpsertAllTrailers(movieID uint, trailers []models.Trailer) error {
	f.upsertedTrailers = append(f.upsertedTrailers, trailers...)
	return nil
}

func (f *fakeStore) UpsertActor(a *models.Actor) error {
	a.ID = uint(a.TMDBID)
	f.upsertedActors = append(f.upsertedActors, *a)
	return nil
}

func (f *fakeStore) UpsertActorTranslation(t *models.ActorTranslation) error {
	f.upsertedActorTrans = append(f.upsertedActorTrans, *t)
	return nil
}

func (f *fakeStore) UpsertCastCredit(c *models.CastCredit) error {
	f.upsertedCredits = append(f.upsertedCredits, *c)
	return nil
}

func (f *fakeStore) ListGenres() ([]models.Genre, error) {
	return f.genres, f.err
}

func (f *fakeStore) BestRatedPosters(limit int, language *string) ([]string, error) {
	return nil, f.err
}

type fakeTMDB struct {
	person        *models.TMDBPerson
	personErr     error
	credits       []int
	creditsErr    error
	nowPlaying    *models.TMDBMovieListResponse
	details       map[string]*models.TMDBMovieDetails // keyed by language
	movieCredits  map[string]*models.TMDBCreditsResponse
	movieVideos   map[string]*models.TMDBVideosResponse
	genres        map[string][]models.TMDBGenre
	searchedNames []string
}

func (f *fakeTMDB) SearchPerson(name string) (*models.TMDBPerson, error) {
	f.searchedNames = append(f.searchedNames, name)
	return f.person, f.personErr
}

func (f *fakeTMDB) GetPersonMovieIDs(personID int) ([]int, error) {
	return f.credits, f.creditsErr
}

func (f *fakeTMDB) GetNowPlaying(page int, language string) (*models.TMDBMovieListResponse, error) {
	return f.nowPlaying, nil
}

func (f *fakeTMDB) GetMovieDetails(tmdbID int, language string) (*models.TMDBMovieDetails, error) {
	if d, ok := f.details[language]; ok {
		return d, nil
	}
	return nil, errors.NewTMDBError("no details for "+language, nil)
}

func (f *fakeTMDB) GetMovieCredits(tmdbID int, language string) (*models.TMDBCreditsResponse, error) {
	if c, ok := f.movieCredits[language]; ok {
		return c, nil
	}
	return nil, errors.NewTMDBError("no credits for "+language, nil)
}

func (f *fakeTMDB) GetMovieVideos(tmdbID int, language string) (*models.TMDBVideosResponse, error) {
	if v, ok := f.movieVideos[language]; ok {
		return v, nil
	}
	return nil, errors.NewTMDBError("no videos for "+language, nil)
}

func (f *fakeTMDB) GetGenres(language string) ([]models.TMDBGenre, error) {
	return f.genres[language], nil
}

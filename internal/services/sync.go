package services

import (
	"fmt"
	"time"

	"github.com/cinefind/cinefind/internal/database"
	"github.com/cinefind/cinefind/internal/models"
	"github.com/cinefind/cinefind/pkg/logger"
)

const (
	posterBaseURL  = "https://image.tmdb.org/t/p/w500"
	profileBaseURL = "https://image.tmdb.org/t/p/w185"
	youtubeWatch   = "https://www.youtube.com/watch?v=%s"

	// Cast billing depth kept per movie
	maxCastPerMovie = 20
)

// SyncService ingests the TMDB now-playing catalog into the store via
// plain write-through upserts. No batching, no background refresh: a run
// walks the configured pages once and returns.
type SyncService struct {
	tmdb      TMDBService
	store     database.MovieStore
	logger    logger.Logger
	languages []string
	pages     int
}

func NewSyncService(tmdb TMDBService, store database.MovieStore, log logger.Logger, languages []string, pages int) *SyncService {
	if len(languages) == 0 {
		languages = []string{"en-US"}
	}
	if pages < 1 {
		pages = 1
	}
	return &SyncService{
		tmdb:      tmdb,
		store:     store,
		logger:    log,
		languages: languages,
		pages:     pages,
	}
}

// Run synchronizes genres and the now-playing movies for every
// configured language. Per-movie failures are logged and skipped so one
// bad record does not abort the run.
func (s *SyncService) Run() error {
	if err := s.syncGenres(); err != nil {
		return err
	}

	primary := s.languages[0]
	synced := 0

	for page := 1; page <= s.pages; page++ {
		listing, err := s.tmdb.GetNowPlaying(page, primary)
		if err != nil {
			return err
		}

		for _, stub := range listing.Results {
			if err := s.syncMovie(stub.ID); err != nil {
				s.logger.Errorf("[Sync] failed to sync movie %d: %v", stub.ID, err)
				continue
			}
			synced++
		}

		if page >= listing.TotalPages {
			break
		}
	}

	s.logger.Infof("[Sync] synchronized %d movies across %d language(s)", synced, len(s.languages))
	return nil
}

func (s *SyncService) syncGenres() error {
	for _, lang := range s.languages {
		tmdbGenres, err := s.tmdb.GetGenres(lang)
		if err != nil {
			return err
		}

		for _, tg := range tmdbGenres {
			genre := models.Genre{TMDBID: tg.ID}
			if err := s.store.UpsertGenre(&genre); err != nil {
				return err
			}
			translation := models.GenreTranslation{
				GenreID:  genre.ID,
				Language: lang,
				Name:     tg.Name,
			}
			if err := s.store.UpsertGenreTranslation(&translation); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SyncService) syncMovie(tmdbID int) error {
	primary := s.languages[0]

	details, err := s.tmdb.GetMovieDetails(tmdbID, primary)
	if err != nil {
		return err
	}

	movie := models.Movie{
		TMDBID:           details.ID,
		IMDBID:           details.IMDBID,
		Rating:           details.VoteAverage,
		Votes:            details.VoteCount,
		ReleaseDate:      parseDate(details.ReleaseDate),
		Runtime:          details.Runtime,
		Status:           details.Status,
		OriginalLanguage: details.OriginalLanguage,
	}
	if err := s.store.UpsertMovie(&movie); err != nil {
		return err
	}

	genreIDs := make([]int, 0, len(details.Genres))
	for _, g := range details.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	if err := s.store.ConnectGenres(movie.ID, genreIDs); err != nil {
		return err
	}

	for i, lang := range s.languages {
		localized := details
		if i > 0 {
			localized, err = s.tmdb.GetMovieDetails(tmdbID, lang)
			if err != nil {
				s.logger.Warnf("[Sync] skipping %s translation for movie %d: %v", lang, tmdbID, err)
				continue
			}
		}

		translation := models.MovieTranslation{
			MovieID:       movie.ID,
			Language:      lang,
			Title:         localized.Title,
			OriginalTitle: optional(localized.OriginalTitle),
			Description:   optional(localized.Overview),
			PosterURL:     imageURL(posterBaseURL, localized.PosterPath),
		}
		if err := s.store.UpsertTranslation(&translation); err != nil {
			return err
		}

		if err := s.syncCast(movie.ID, tmdbID, lang, i == 0); err != nil {
			return err
		}

		if err := s.syncTrailers(movie.ID, tmdbID, lang); err != nil {
			return err
		}
	}

	return nil
}

// syncCast upserts a movie's cast for one language. Credit rows are only
// written on the primary-language pass; later passes add translated
// actor names.
func (s *SyncService) syncCast(movieID uint, tmdbID int, language string, writeCredits bool) error {
	credits, err := s.tmdb.GetMovieCredits(tmdbID, language)
	if err != nil {
		s.logger.Warnf("[Sync] skipping %s credits for movie %d: %v", language, tmdbID, err)
		return nil
	}

	cast := credits.Cast
	if len(cast) > maxCastPerMovie {
		cast = cast[:maxCastPerMovie]
	}

	for _, member := range cast {
		actor := models.Actor{
			TMDBID:     member.ID,
			Popularity: member.Popularity,
			ProfileURL: imageURL(profileBaseURL, member.ProfilePath),
		}
		if err := s.store.UpsertActor(&actor); err != nil {
			return err
		}

		translation := models.ActorTranslation{
			ActorID:  actor.ID,
			Language: language,
			Name:     member.Name,
		}
		if err := s.store.UpsertActorTranslation(&translation); err != nil {
			return err
		}

		if writeCredits {
			credit := models.CastCredit{
				MovieID:   movieID,
				ActorID:   actor.ID,
				Character: member.Character,
				Ordinal:   member.Order,
			}
			if err := s.store.UpsertCastCredit(&credit); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *SyncService) syncTrailers(movieID uint, tmdbID int, language string) error {
	videos, err := s.tmdb.GetMovieVideos(tmdbID, language)
	if err != nil {
		s.logger.Warnf("[Sync] skipping %s trailers for movie %d: %v", language, tmdbID, err)
		return nil
	}

	var trailers []models.Trailer
	for _, video := range videos.Results {
		if video.Site != "YouTube" || video.Type != "Trailer" || video.Key == "" {
			continue
		}
		trailers = append(trailers, models.Trailer{
			URL:      fmt.Sprintf(youtubeWatch, video.Key),
			Language: language,
			Title:    video.Name,
			VideoKey: video.Key,
			Site:     video.Site,
		})
	}

	return s.store.UpsertAllTrailers(movieID, trailers)
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &parsed
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func imageURL(base, path string) *string {
	if path == "" {
		return nil
	}
	full := base + path
	return &full
}

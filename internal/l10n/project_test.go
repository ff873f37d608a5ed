package l10n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinefind/cinefind/internal/models"
)

func strPtr(s string) *string { return &s }

func fullMovie() *models.Movie {
	return &models.Movie{
		ID:     7,
		TMDBID: 550,
		IMDBID: "tt0137523",
		Rating: 8.4,
		Votes:  25000,
		Translations: []models.MovieTranslation{
			{Language: "en-US", Title: "Fight Club", Description: strPtr("An insomniac office worker..."), PosterURL: strPtr("/en.jpg")},
			{Language: "fr-FR", Title: "Fight Club (fr)", PosterURL: strPtr("/fr.jpg")},
		},
		Genres: []models.Genre{
			{ID: 1, TMDBID: 18, Translations: []models.GenreTranslation{{Language: "en-US", Name: "Drama"}}},
			{ID: 2, TMDBID: 53, Translations: []models.GenreTranslation{{Language: "en-US", Name: "Thriller"}}},
		},
		Cast: []models.CastCredit{
			{
				Character: "The Narrator",
				Ordinal:   0,
				Actor: models.Actor{
					ID: 11, TMDBID: 819, Popularity: 20.5,
					Translations: []models.ActorTranslation{{Language: "en-US", Name: "Edward Norton", Biography: strPtr("American actor.")}},
				},
			},
			{
				Character: "Tyler Durden",
				Ordinal:   1,
				Actor: models.Actor{
					ID: 12, TMDBID: 287,
					Translations: []models.ActorTranslation{{Language: "en-US", Name: "Brad Pitt"}},
				},
			},
		},
		Trailers: []models.Trailer{
			{URL: "https://www.youtube.com/watch?v=abc", Language: "en-US", Title: "Official Trailer"},
		},
	}
}

func TestLocalizeMovieCompleteness(t *testing.T) {
	movie := fullMovie()
	out := LocalizeMovie(movie, "en-US")

	assert.Len(t, out.Genres, len(movie.Genres))
	assert.Len(t, out.Cast, len(movie.Cast))
	assert.Len(t, out.Trailers, len(movie.Trailers))

	assert.Equal(t, "Fight Club", out.Title)
	require.NotNil(t, out.Description)
	assert.Equal(t, "Drama", out.Genres[0].Name)
	assert.Equal(t, "Thriller", out.Genres[1].Name)
	assert.Equal(t, movie.Trailers, out.Trailers)
}

func TestLocalizeMovieCastOrderPreserved(t *testing.T) {
	out := LocalizeMovie(fullMovie(), "en-US")

	require.Len(t, out.Cast, 2)
	assert.Equal(t, 0, out.Cast[0].Ordinal)
	assert.Equal(t, "Edward Norton", out.Cast[0].Name)
	assert.Equal(t, "The Narrator", out.Cast[0].Character)
	assert.Equal(t, 1, out.Cast[1].Ordinal)
	assert.Equal(t, "Brad Pitt", out.Cast[1].Name)
}

func TestLocalizeMovieFallsBackToLoadedTranslation(t *testing.T) {
	out := LocalizeMovie(fullMovie(), "he-IL")

	// No he-IL translation: first loaded one wins
	assert.Equal(t, "Fight Club", out.Title)
}

func TestLocalizeMovieMissingTranslationLiterals(t *testing.T) {
	movie := &models.Movie{
		ID:     1,
		TMDBID: 99,
		Genres: []models.Genre{{ID: 4, TMDBID: 37}},
		Cast: []models.CastCredit{
			{Character: "Cowboy", Ordinal: 0, Actor: models.Actor{ID: 5, TMDBID: 42}},
		},
	}

	out := LocalizeMovie(movie, "en-US")

	assert.Equal(t, UnknownTitle, out.Title)
	assert.Nil(t, out.Description)
	assert.Nil(t, out.OriginalTitle)
	assert.Nil(t, out.PosterURL)
	assert.Equal(t, "Genre 37", out.Genres[0].Name)
	assert.Equal(t, UnknownActor, out.Cast[0].Name)
	assert.Nil(t, out.Cast[0].Biography)
}

func TestLocalizeMoviePassesThroughActorAttributes(t *testing.T) {
	out := LocalizeMovie(fullMovie(), "en-US")

	member := out.Cast[0]
	assert.Equal(t, uint(11), member.ActorID)
	assert.Equal(t, 819, member.TMDBID)
	assert.Equal(t, 20.5, member.Popularity)
	require.NotNil(t, member.Biography)
	assert.Equal(t, "American actor.", *member.Biography)
}

func TestLocalizeMovieStable(t *testing.T) {
	movie := fullMovie()
	first := LocalizeMovie(movie, "fr-FR")
	second := LocalizeMovie(movie, "fr-FR")
	assert.Equal(t, first, second)
}

func TestLocalizeGenreFallbacks(t *testing.T) {
	genre := &models.Genre{
		ID:     3,
		TMDBID: 35,
		Translations: []models.GenreTranslation{
			{Language: "he-IL", Name: "קומדיה"},
		},
	}

	// Requested and reference languages absent: the "any available" tier
	// returns the loaded translation, not the synthesized literal
	out := LocalizeGenre(genre, "fr-FR", "en-US")
	assert.Equal(t, "קומדיה", out.Name)

	empty := &models.Genre{ID: 9, TMDBID: 878}
	assert.Equal(t, "Genre 878", LocalizeGenre(empty, "fr-FR", "en-US").Name)
}

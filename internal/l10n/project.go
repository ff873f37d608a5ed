package l10n

import (
	"fmt"

	"github.com/cinefind/cinefind/internal/models"
)

// Default literals used when an entity has no translation at all.
// Centralized here so the resolver stays pure.
const (
	UnknownTitle = "Unknown Title"
	UnknownActor = "Unknown Actor"
)

// LocalizeMovie flattens a fully populated movie into its language-specific
// projection. The fallback for every sub-entity is "first loaded
// translation"; there is no fixed secondary language at this layer.
// Cast order and genre order are preserved; trailers pass through.
// Deterministic: same movie and language always yield the same output.
func LocalizeMovie(m *models.Movie, language string) models.LocalizedMovie {
	out := models.LocalizedMovie{
		ID:               m.ID,
		TMDBID:           m.TMDBID,
		IMDBID:           m.IMDBID,
		Title:            UnknownTitle,
		Rating:           m.Rating,
		Votes:            m.Votes,
		ReleaseDate:      m.ReleaseDate,
		Runtime:          m.Runtime,
		Status:           m.Status,
		OriginalLanguage: m.OriginalLanguage,
		Genres:           make([]models.LocalizedGenre, 0, len(m.Genres)),
		Cast:             make([]models.LocalizedCastMember, 0, len(m.Cast)),
		Trailers:         m.Trailers,
	}
	if out.Trailers == nil {
		out.Trailers = []models.Trailer{}
	}

	if t, ok := Pick(m.Translations, language); ok {
		out.Title = t.Title
		out.OriginalTitle = t.OriginalTitle
		out.Description = t.Description
		out.PosterURL = t.PosterURL
	}

	for _, g := range m.Genres {
		out.Genres = append(out.Genres, LocalizeGenre(&g, language))
	}

	for _, credit := range m.Cast {
		out.Cast = append(out.Cast, localizeCredit(&credit, language))
	}

	return out
}

// LocalizeGenre resolves a genre name, synthesizing "Genre <tmdbID>" when
// the genre carries no translation. Extra fallback languages may be
// supplied by catalog listings.
func LocalizeGenre(g *models.Genre, language string, fallbacks ...string) models.LocalizedGenre {
	name := fmt.Sprintf("Genre %d", g.TMDBID)
	if t, ok := Pick(g.Translations, language, fallbacks...); ok {
		name = t.Name
	}

	return models.LocalizedGenre{
		ID:     g.ID,
		TMDBID: g.TMDBID,
		Name:   name,
	}
}

func localizeCredit(credit *models.CastCredit, language string) models.LocalizedCastMember {
	actor := credit.Actor

	member := models.LocalizedCastMember{
		ActorID:      actor.ID,
		TMDBID:       actor.TMDBID,
		Name:         UnknownActor,
		Character:    credit.Character,
		Ordinal:      credit.Ordinal,
		Popularity:   actor.Popularity,
		Birthday:     actor.Birthday,
		Deathday:     actor.Deathday,
		PlaceOfBirth: actor.PlaceOfBirth,
		ProfileURL:   actor.ProfileURL,
	}

	if t, ok := Pick(actor.Translations, language); ok {
		member.Name = t.Name
		member.Biography = t.Biography
	}

	return member
}

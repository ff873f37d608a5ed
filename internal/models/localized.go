package models

import "time"

// LocalizedMovie is the flattened, language-resolved projection of a fully
// populated movie. It is derived state: recomputed per request, never
// persisted, safe to cache as an opaque blob.
type LocalizedMovie struct {
	ID               uint       `json:"id"`
	TMDBID           int        `json:"tmdb_id"`
	IMDBID           string     `json:"imdb_id"`
	Title            string     `json:"title"`
	OriginalTitle    *string    `json:"original_title"`
	Description      *string    `json:"description"`
	PosterURL        *string    `json:"poster_url"`
	Rating           float64    `json:"rating"`
	Votes            int        `json:"votes"`
	ReleaseDate      *time.Time `json:"release_date"`
	Runtime          int        `json:"runtime"`
	Status           string     `json:"status"`
	OriginalLanguage string     `json:"original_language"`

	Genres   []LocalizedGenre      `json:"genres"`
	Cast     []LocalizedCastMember `json:"cast"`
	Trailers []Trailer             `json:"trailers"`
}

type LocalizedGenre struct {
	ID     uint   `json:"id"`
	TMDBID int    `json:"tmdb_id"`
	Name   string `json:"name"`
}

// LocalizedCastMember flattens a cast credit with its actor's resolved
// translation. Ordinal preserves the credit's display order.
type LocalizedCastMember struct {
	ActorID      uint       `json:"actor_id"`
	TMDBID       int        `json:"tmdb_id"`
	Name         string     `json:"name"`
	Character    string     `json:"character"`
	Ordinal      int        `json:"ordinal"`
	Popularity   float64    `json:"popularity"`
	Birthday     *time.Time `json:"birthday"`
	Deathday     *time.Time `json:"deathday"`
	PlaceOfBirth *string    `json:"place_of_birth"`
	ProfileURL   *string    `json:"profile_url"`
	Biography    *string    `json:"biography"`
}

// Package models defines the catalog entities and the request/response
// shapes exchanged between the store, the services and the handlers.
package models

import "time"

// Movie is the normalized catalog record. Translations, trailers, genres
// and cast are separate relations; the movie row itself carries only
// language-independent attributes. TMDBID is the upsert key.
type Movie struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	TMDBID           int    `gorm:"uniqueIndex;not null" json:"tmdb_id"`
	IMDBID           string `gorm:"index" json:"imdb_id"`
	Rating           float64
	Votes            int
	ReleaseDate      *time.Time
	Runtime          int
	Status           string
	OriginalLanguage string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Translations []MovieTranslation `gorm:"foreignKey:MovieID"`
	Trailers     []Trailer          `gorm:"foreignKey:MovieID"`
	Genres       []Genre            `gorm:"many2many:movie_genres"`
	Cast         []CastCredit       `gorm:"foreignKey:MovieID"`
}

// MovieTranslation holds the localized fields of a movie. At most one
// row per (movie, language).
type MovieTranslation struct {
	ID            uint   `gorm:"primaryKey"`
	MovieID       uint   `gorm:"uniqueIndex:idx_movie_translation;not null"`
	Language      string `gorm:"uniqueIndex:idx_movie_translation;not null"`
	Title         string
	OriginalTitle *string
	Description   *string
	PosterURL     *string
}

func (t MovieTranslation) LanguageTag() string { return t.Language }

type Genre struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TMDBID int  `gorm:"uniqueIndex;not null" json:"tmdb_id"`

	Translations []GenreTranslation `gorm:"foreignKey:GenreID"`
}

type GenreTranslation struct {
	ID       uint   `gorm:"primaryKey"`
	GenreID  uint   `gorm:"uniqueIndex:idx_genre_translation;not null"`
	Language string `gorm:"uniqueIndex:idx_genre_translation;not null"`
	Name     string
}

func (t GenreTranslation) LanguageTag() string { return t.Language }

type Actor struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TMDBID       int    `gorm:"uniqueIndex;not null" json:"tmdb_id"`
	IMDBID       string `gorm:"index" json:"imdb_id"`
	Popularity   float64
	Birthday     *time.Time
	Deathday     *time.Time
	PlaceOfBirth *string
	ProfileURL   *string

	Translations []ActorTranslation `gorm:"foreignKey:ActorID"`
}

type ActorTranslation struct {
	ID        uint   `gorm:"primaryKey"`
	ActorID   uint   `gorm:"uniqueIndex:idx_actor_translation;not null"`
	Language  string `gorm:"uniqueIndex:idx_actor_translation;not null"`
	Name      string
	Biography *string
}

func (t ActorTranslation) LanguageTag() string { return t.Language }

// CastCredit links a movie to an actor with the billed character and an
// explicit display order (ascending, primary billing first).
type CastCredit struct {
	ID        uint `gorm:"primaryKey"`
	MovieID   uint `gorm:"uniqueIndex:idx_cast_credit;not null"`
	ActorID   uint `gorm:"uniqueIndex:idx_cast_credit;not null"`
	Character string
	Ordinal   int

	Actor Actor `gorm:"foreignKey:ActorID"`
}

// Trailer is unique per (movie, URL). The URL is derived from the video
// key at ingestion time; trailers are not localized beyond the language
// tag they carry.
type Trailer struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MovieID  uint   `gorm:"uniqueIndex:idx_movie_trailer;not null" json:"movie_id"`
	URL      string `gorm:"uniqueIndex:idx_movie_trailer;not null" json:"url"`
	Language string `json:"language"`
	Title    string `json:"title"`
	VideoKey string `json:"video_key"`
	Site     string `json:"site"`
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/cinefind/cinefind/internal/errors"
)

// SortField is a movie attribute results can be ordered by.
type SortField string

const (
	SortByRating      SortField = "rating"
	SortByVotes       SortField = "votes"
	SortByReleaseDate SortField = "release_date"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is the parsed form of a compound sort token ("rating.desc").
// Tokens are parsed once at the boundary; nothing downstream re-parses
// strings.
type SortSpec struct {
	Field     SortField
	Direction SortDirection
}

func (s SortSpec) Token() string {
	return fmt.Sprintf("%s.%s", s.Field, s.Direction)
}

// ParseSortToken parses a "field.direction" token. An unrecognized token
// is a caller contract violation, not a silent default.
func ParseSortToken(token string) (SortSpec, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return SortSpec{}, errors.NewInvalidInputError(fmt.Sprintf("malformed sort token: %q", token))
	}

	var field SortField
	switch parts[0] {
	case "rating":
		field = SortByRating
	case "votes":
		field = SortByVotes
	case "release_date":
		field = SortByReleaseDate
	default:
		return SortSpec{}, errors.NewInvalidInputError(fmt.Sprintf("unknown sort field: %q", parts[0]))
	}

	var dir SortDirection
	switch parts[1] {
	case "asc":
		dir = SortAsc
	case "desc":
		dir = SortDesc
	default:
		return SortSpec{}, errors.NewInvalidInputError(fmt.Sprintf("unknown sort direction: %q", parts[1]))
	}

	return SortSpec{Field: field, Direction: dir}, nil
}

// MovieFilters is the raw, caller-supplied search input before
// normalization.
type MovieFilters struct {
	Query      string `json:"query"`
	ActorQuery string `json:"actor_query"`
	GenreIDs   []int  `json:"genre_ids"`
	Sort       string `json:"sort"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Language   string `json:"language"`
}

// MovieFilter is the structured constraint set executed by the store.
// TMDBIDs is a restriction to a candidate set: nil means unrestricted,
// a non-nil slice restricts matches to exactly those external IDs.
type MovieFilter struct {
	Query        string
	GenreTMDBIDs []int
	TMDBIDs      []int
	ReleasedFrom *time.Time
	ReleasedTo   *time.Time
}

// PaginatedMovies is the search result envelope.
type PaginatedMovies struct {
	Items      []LocalizedMovie `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// GenreOption is one entry of the localized genre catalog.
type GenreOption struct {
	ID     uint   `json:"id"`
	TMDBID int    `json:"tmdb_id"`
	Name   string `json:"name"`
}

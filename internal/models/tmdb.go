package models

// Wire shapes for the TMDB API endpoints the service consumes.

type TMDBPersonSearchResponse struct {
	Page    int          `json:"page"`
	Results []TMDBPerson `json:"results"`
}

type TMDBPerson struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
}

type TMDBPersonCreditsResponse struct {
	ID   int                `json:"id"`
	Cast []TMDBPersonCredit `json:"cast"`
}

type TMDBPersonCredit struct {
	ID    int    `json:"id"` // movie TMDB ID
	Title string `json:"title"`
}

type TMDBPersonDetails struct {
	ID           int     `json:"id"`
	IMDBID       string  `json:"imdb_id"`
	Name         string  `json:"name"`
	Biography    string  `json:"biography"`
	Birthday     string  `json:"birthday"`
	Deathday     string  `json:"deathday"`
	PlaceOfBirth string  `json:"place_of_birth"`
	Popularity   float64 `json:"popularity"`
	ProfilePath  string  `json:"profile_path"`
}

type TMDBMovieListResponse struct {
	Page         int             `json:"page"`
	Results      []TMDBMovieStub `json:"results"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}

type TMDBMovieStub struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type TMDBMovieDetails struct {
	ID               int         `json:"id"`
	IMDBID           string      `json:"imdb_id"`
	Title            string      `json:"title"`
	OriginalTitle    string      `json:"original_title"`
	Overview         string      `json:"overview"`
	PosterPath       string      `json:"poster_path"`
	VoteAverage      float64     `json:"vote_average"`
	VoteCount        int         `json:"vote_count"`
	ReleaseDate      string      `json:"release_date"`
	Runtime          int         `json:"runtime"`
	Status           string      `json:"status"`
	OriginalLanguage string      `json:"original_language"`
	Genres           []TMDBGenre `json:"genres"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TMDBGenreListResponse struct {
	Genres []TMDBGenre `json:"genres"`
}

type TMDBCreditsResponse struct {
	ID   int              `json:"id"`
	Cast []TMDBCastMember `json:"cast"`
}

type TMDBCastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Order       int     `json:"order"`
	Popularity  float64 `json:"popularity"`
	ProfilePath string  `json:"profile_path"`
}

type TMDBVideosResponse struct {
	ID      int         `json:"id"`
	Results []TMDBVideo `json:"results"`
}

type TMDBVideo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Language string `json:"iso_639_1"`
}

package tmdb

// Wire DTOs for the catalog API. Optional fields that arrive absent or null
// are defaulted during mapping, never treated as failures.

type movieDTO struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
	Overview     string  `json:"overview"`
	GenreIDs     []int   `json:"genre_ids"`
}

type pageDTO struct {
	Page         int        `json:"page"`
	Results      []movieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListDTO struct {
	Genres []genreDTO `json:"genres"`
}

type detailDTO struct {
	movieDTO
	Genres    []genreDTO `json:"genres"`
	Runtime   int        `json:"runtime"`
	Tagline   string     `json:"tagline"`
	Status    string     `json:"status"`
	VoteCount int        `json:"vote_count"`
	Homepage  string     `json:"homepage"`
}

type castDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type crewDTO struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

type creditsDTO struct {
	ID   int       `json:"id"`
	Cast []castDTO `json:"cast"`
	Crew []crewDTO `json:"crew"`
}

type imageDTO struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average"`
}

type imagesDTO struct {
	ID        int        `json:"id"`
	Backdrops []imageDTO `json:"backdrops"`
	Posters   []imageDTO `json:"posters"`
}

type videoDTO struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type videosDTO struct {
	ID      int        `json:"id"`
	Results []videoDTO `json:"results"`
}

type statusDTO struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

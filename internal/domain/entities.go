package domain

import (
	"fmt"
	"strings"
)

// Movie represents a catalog item as returned by listing and search endpoints.
// Sourced read-only from the upstream catalog; favorites store full snapshots
// of this type so entries stay renderable if the catalog entry changes.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"` // "2006-01-02"
	Overview     string  `json:"overview"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// ReleaseYear returns the release year, or 0 when the date is absent.
func (m Movie) ReleaseYear() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	var year int
	if _, err := fmt.Sscanf(m.ReleaseDate[:4], "%d", &year); err != nil {
		return 0
	}
	return year
}

// FormattedRating returns the vote average as a one-decimal string.
func (m Movie) FormattedRating() string {
	if m.VoteAverage <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// ShortOverview returns the overview truncated to max runes.
func (m Movie) ShortOverview(max int) string {
	overview := strings.TrimSpace(m.Overview)
	runes := []rune(overview)
	if len(runes) <= max {
		return overview
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}

// MovieDetail carries the full metadata for a single movie.
type MovieDetail struct {
	Movie
	Genres    []Genre `json:"genres,omitempty"`
	Runtime   int     `json:"runtime"` // minutes
	Tagline   string  `json:"tagline"`
	Status    string  `json:"status"`
	VoteCount int     `json:"vote_count"`
	Homepage  string  `json:"homepage"`
}

// FormattedRuntime returns the runtime in a human-readable format.
func (d MovieDetail) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	m := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// Genre is a catalog genre descriptor.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Page is one page of a listing or search response.
type Page struct {
	Movies       []Movie
	Page         int
	TotalPages   int
	TotalResults int
}

// CastMember is one cast entry from the credits subresource.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// CrewMember is one crew entry from the credits subresource.
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits is the credits subresource payload.
type Credits struct {
	Cast []CastMember
	Crew []CrewMember
}

// Director returns the crew member credited as director, if any.
func (c Credits) Director() (CrewMember, bool) {
	for _, member := range c.Crew {
		if member.Job == "Director" {
			return member, true
		}
	}
	return CrewMember{}, false
}

// Image is one poster or backdrop entry from the images subresource.
type Image struct {
	FilePath    string  `json:"file_path"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	VoteAverage float64 `json:"vote_average"`
}

// ImageSet is the images subresource payload.
type ImageSet struct {
	Backdrops []Image
	Posters   []Image
}

// Video is one trailer/teaser entry from the videos subresource.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"` // "YouTube", "Vimeo"
	Type     string `json:"type"` // "Trailer", "Teaser", ...
	Official bool   `json:"official"`
}

// WatchURL returns a playable URL for the video, or "" for unknown sites.
func (v Video) WatchURL() string {
	switch v.Site {
	case "YouTube":
		return "https://www.youtube.com/watch?v=" + v.Key
	case "Vimeo":
		return "https://vimeo.com/" + v.Key
	default:
		return ""
	}
}

// User is the authenticated user's profile.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResult contains the result of a successful authentication.
type AuthResult struct {
	User  User
	Token string
}

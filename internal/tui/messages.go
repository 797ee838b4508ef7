package tui

import (
	"github.com/drake/reel/internal/domain"
)

// Message types for the TUI

// Surface identifies which listing accumulator a page belongs to.
type Surface int

const (
	SurfaceBrowse Surface = iota
	SurfaceSearch
)

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageFetchedMsg carries one fetched result page. Gen and Page let the
// receiving pager reject results that arrive after a reset or out of order.
type PageFetchedMsg struct {
	Surface      Surface
	Gen          uint64
	Page         int
	Movies       []domain.Movie
	TotalResults int
}

// PageFetchFailedMsg signals that a page request failed
type PageFetchFailedMsg struct {
	Surface Surface
	Gen     uint64
	Err     error
}

// GenresLoadedMsg signals that the genre catalog has been loaded
type GenresLoadedMsg struct {
	Genres []domain.Genre
}

// DetailLoadedMsg carries a movie detail together with its subresources.
// Subresource errors are tolerated; missing sections render as absent.
type DetailLoadedMsg struct {
	Detail  *domain.MovieDetail
	Credits *domain.Credits
	Videos  []domain.Video
	Similar []domain.Movie
}

// SessionChangedMsg signals that the auth slice changed (login, register,
// logout, or a failed attempt). The model re-reads the session store.
type SessionChangedMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// SearchDebounceMsg fires after the search input settles. Seq identifies
// the keystroke burst it belongs to; stale ticks are ignored.
type SearchDebounceMsg struct {
	Seq int
}

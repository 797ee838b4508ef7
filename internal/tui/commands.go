package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/service"
	"github.com/drake/reel/internal/session"
)

// Command factories for async operations

// FetchPageCmd fetches one catalog page for the given surface. The gen and
// page values travel with the result so stale responses are discarded.
func FetchPageCmd(svc *service.CatalogService, surface Surface, gen uint64, page int, filter domain.Filter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			result *domain.Page
			err    error
		)
		if surface == SurfaceSearch {
			result, err = svc.SearchPage(ctx, filter.Query, page)
		} else {
			result, err = svc.DiscoverPage(ctx, filter, page)
		}
		if err != nil {
			return PageFetchFailedMsg{Surface: surface, Gen: gen, Err: err}
		}
		return PageFetchedMsg{
			Surface:      surface,
			Gen:          gen,
			Page:         result.Page,
			Movies:       result.Movies,
			TotalResults: result.TotalResults,
		}
	}
}

// LoadGenresCmd loads the genre catalog
func LoadGenresCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		genres, err := svc.Genres(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading genres"}
		}
		return GenresLoadedMsg{Genres: genres}
	}
}

// LoadDetailCmd loads a movie detail plus its subresources. The detail
// itself is required; subresources degrade to empty sections on error.
func LoadDetailCmd(svc *service.CatalogService, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		detail, err := svc.Detail(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading movie"}
		}

		msg := DetailLoadedMsg{Detail: detail}
		if credits, err := svc.Credits(ctx, id); err == nil {
			msg.Credits = credits
		}
		if videos, err := svc.Videos(ctx, id); err == nil {
			msg.Videos = videos
		}
		if similar, err := svc.Similar(ctx, id); err == nil && similar != nil {
			msg.Similar = similar.Movies
		}
		return msg
	}
}

// LoginCmd attempts a sign-in through the session store
func LoginCmd(sess *session.Store, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sess.Login(ctx, email, password)
		return SessionChangedMsg{}
	}
}

// RegisterCmd attempts account creation through the session store
func RegisterCmd(sess *session.Store, username, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sess.Register(ctx, username, email, password)
		return SessionChangedMsg{}
	}
}

// LogoutCmd clears the current session
func LogoutCmd(sess *session.Store) tea.Cmd {
	return func() tea.Msg {
		sess.Logout()
		return SessionChangedMsg{}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// SearchDebounceCmd schedules the debounce tick for a search keystroke burst
func SearchDebounceCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return SearchDebounceMsg{Seq: seq}
	})
}

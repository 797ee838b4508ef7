package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/nav"
	"github.com/drake/reel/internal/tui/components"
)

// handleKeyMsg routes key presses by input context first, then view
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing contexts capture almost everything.
	if m.view == ViewAccount {
		return m.handleAccountKeys(msg)
	}
	if m.filtering {
		return m.handleFilterKeys(msg)
	}
	if m.view == ViewSearch && m.searchInput.Focused() {
		return m.handleSearchInputKeys(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Browse):
		m.view = ViewBrowse
		m.restoreLocation()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.view = ViewSearch
		m.searchInput.Focus()
		m.restoreLocation()
		return m, nil

	case key.Matches(msg, Keys.Favorites):
		if !m.Session.IsAuthenticated() {
			m.returnTo = m.view
			m.view = ViewAccount
			m.StatusMsg = "Sign in to see your favorites"
			return m, ClearStatusCmd(statusTimeout)
		}
		m.refreshFavorites()
		m.view = ViewFavorites
		m.restoreLocation()
		return m, nil

	case key.Matches(msg, Keys.Account):
		if m.Session.IsAuthenticated() {
			return m, LogoutCmd(m.Session)
		}
		m.returnTo = m.view
		m.view = ViewAccount
		return m, nil
	}

	if m.view == ViewDetail {
		return m.handleDetailKeys(msg)
	}
	return m.handleListKeys(msg)
}

func (m Model) handleAccountKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.form.Busy() {
			return m, nil
		}
		m.form.Reset()
		m.view = m.returnTo
		m.restoreLocation()
		return m, nil
	case "ctrl+r":
		if m.form.Mode == components.ModeLogin {
			m.form.SetMode(components.ModeRegister)
		} else {
			m.form.SetMode(components.ModeLogin)
		}
		return m, nil
	case "tab", "down":
		m.form.NextField()
		return m, nil
	case "shift+tab", "up":
		m.form.PrevField()
		return m, nil
	case "enter":
		if m.form.Busy() {
			return m, nil
		}
		if problem := m.form.Validate(); problem != "" {
			m.form.SetError(problem)
			return m, nil
		}
		username, email, password := m.form.Values()
		m.form.SetBusy()
		if m.form.Mode == components.ModeRegister {
			return m, RegisterCmd(m.Session, username, email, password)
		}
		return m, LoginCmd(m.Session, email, password)
	}

	cmd := m.form.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.activeList()
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.filterInput.SetValue("")
		m.filterInput.Blur()
		if list != nil {
			list.SetFilterQuery("")
		}
		return m, nil
	case "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if list != nil {
		list.SetFilterQuery(strings.TrimSpace(m.filterInput.Value()))
	}
	return m, cmd
}

func (m Model) handleSearchInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searchInput.Blur()
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.searchSeq++
		return m, m.commitSearchQuery()
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(cmd, SearchDebounceCmd(m.searchSeq, searchDebounce))
	}
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Back), key.Matches(msg, Keys.Escape):
		m.view = m.returnTo
		m.restoreLocation()
		return m, nil
	case key.Matches(msg, Keys.Up):
		m.detail.ScrollUp()
		return m, nil
	case key.Matches(msg, Keys.Down):
		m.detail.ScrollDown()
		return m, nil
	case key.Matches(msg, Keys.ToggleFavorite):
		if d := m.detail.Movie(); d != nil {
			return m.toggleFavorite(d.Movie)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.activeList()
	if list == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Up):
		list.MoveUp()
	case key.Matches(msg, Keys.Down):
		list.MoveDown()
		return m, m.continueForView()
	case key.Matches(msg, Keys.HalfUp):
		list.HalfPageUp()
	case key.Matches(msg, Keys.HalfDown):
		list.HalfPageDown()
		return m, m.continueForView()
	case key.Matches(msg, Keys.Home):
		list.GoToTop()
	case key.Matches(msg, Keys.End):
		list.GoToBottom()
		return m, m.continueForView()

	case key.Matches(msg, Keys.Enter):
		if movie, ok := list.Selected(); ok {
			return m, m.openDetailCmd(movie.ID)
		}

	case key.Matches(msg, Keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(list.FilterQuery())
		m.filterInput.Focus()

	case key.Matches(msg, Keys.ToggleFavorite):
		if movie, ok := list.Selected(); ok {
			return m.toggleFavorite(movie)
		}

	case key.Matches(msg, Keys.Escape):
		if list.FilterQuery() != "" {
			list.SetFilterQuery("")
			m.filterInput.SetValue("")
		}

	case key.Matches(msg, Keys.Genre):
		if m.view == ViewBrowse && len(m.genres) > 0 {
			m.genreIdx = (m.genreIdx + 1) % (len(m.genres) + 1)
			return m, m.setBrowseFilter(m.currentFilter())
		}
	case key.Matches(msg, Keys.GenreBack):
		if m.view == ViewBrowse && len(m.genres) > 0 {
			m.genreIdx = (m.genreIdx + len(m.genres)) % (len(m.genres) + 1)
			return m, m.setBrowseFilter(m.currentFilter())
		}
	case key.Matches(msg, Keys.Period):
		if m.view == ViewBrowse {
			m.periodIdx = (m.periodIdx + 1) % len(domain.Periods())
			return m, m.setBrowseFilter(m.currentFilter())
		}
	case key.Matches(msg, Keys.PeriodBack):
		if m.view == ViewBrowse {
			n := len(domain.Periods())
			m.periodIdx = (m.periodIdx + n - 1) % n
			return m, m.setBrowseFilter(m.currentFilter())
		}
	case key.Matches(msg, Keys.ClearFilter):
		if m.view == ViewBrowse {
			m.genreIdx = 0
			m.periodIdx = 0
			return m, m.setBrowseFilter(domain.Filter{})
		}

	case m.view == ViewFavorites && msg.String() == "X":
		m.Favorites.Clear()
		m.refreshFavorites()
		m.StatusMsg = "Favorites cleared"
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusTimeout)
	}

	return m, nil
}

// continueForView runs the continuation check for the surface behind the
// active view. Favorites is fully local and never pages.
func (m *Model) continueForView() tea.Cmd {
	switch m.view {
	case ViewBrowse:
		return m.maybeContinue(SurfaceBrowse)
	case ViewSearch:
		return m.maybeContinue(SurfaceSearch)
	}
	return nil
}

func (m Model) toggleFavorite(movie domain.Movie) (tea.Model, tea.Cmd) {
	if !m.Session.IsAuthenticated() {
		m.returnTo = m.view
		m.view = ViewAccount
		m.StatusMsg = "Sign in to save favorites"
		return m, ClearStatusCmd(statusTimeout)
	}

	if m.Favorites.IsFavorite(movie.ID) {
		m.Favorites.Remove(movie.ID)
		m.StatusMsg = "Removed from favorites"
	} else {
		m.Favorites.Add(movie)
		m.StatusMsg = "Added to favorites"
	}
	m.StatusIsErr = false
	if m.view == ViewFavorites {
		m.refreshFavorites()
	}
	return m, ClearStatusCmd(statusTimeout)
}

// restoreLocation rebuilds the deep link from the current view state
func (m *Model) restoreLocation() {
	switch m.view {
	case ViewSearch:
		m.loc = nav.Location{Route: nav.RouteSearch, Params: nav.NewParams()}
		m.loc.SetFilter(m.searchPager.Filter())
	case ViewFavorites:
		m.loc = nav.Location{Route: nav.RouteFavorites, Params: nav.NewParams()}
	default:
		m.loc = nav.Location{Route: nav.RouteBrowse, Params: nav.NewParams()}
		m.loc.SetFilter(m.browsePager.Filter())
	}
}

func friendlyCatalogError(err error) string {
	if errors.Is(err, domain.ErrCatalogOffline) {
		return "Can't reach the catalog. Check your connection."
	}
	return err.Error()
}

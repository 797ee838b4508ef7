package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/favorites"
	"github.com/drake/reel/internal/nav"
	"github.com/drake/reel/internal/pager"
	"github.com/drake/reel/internal/service"
	"github.com/drake/reel/internal/session"
	"github.com/drake/reel/internal/tui/components"
)

// View identifies the active screen
type View int

const (
	ViewBrowse View = iota
	ViewSearch
	ViewFavorites
	ViewDetail
	ViewAccount
)

const (
	searchDebounce = 500 * time.Millisecond
	statusTimeout  = 4 * time.Second
	tickInterval   = 100 * time.Millisecond

	// header + filter line + footer
	chromeHeight = 3
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services and state slices
	Catalog   *service.CatalogService
	Session   *session.Store
	Favorites *favorites.Store

	// Page accumulators, one per listing surface
	browsePager   *pager.Pager
	searchPager   *pager.Pager
	browseTrigger ContinuationTrigger
	searchTrigger ContinuationTrigger

	// UI components
	browseList  components.MovieList
	searchList  components.MovieList
	favList     components.MovieList
	detail      components.Detail
	form        components.AuthForm
	searchInput textinput.Model
	filterInput textinput.Model

	// Genre catalog for the browse filter bar
	genres    []domain.Genre
	genreIdx  int
	periodIdx int

	// Navigation
	view     View
	returnTo View
	loc      nav.Location

	// Deep link target resolved at startup
	pendingMovieID int

	// Local list filtering ("/")
	filtering bool

	// Search debounce
	searchSeq int

	// Dimensions
	Width  int
	Height int
	Ready  bool

	// UI state
	StatusMsg    string
	StatusIsErr  bool
	SpinnerFrame int
}

// NewModel creates the application model. The initial location applies any
// deep link the process was started with.
func NewModel(catalog *service.CatalogService, sess *session.Store, favs *favorites.Store, loc nav.Location) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "search movies..."
	searchInput.CharLimit = 128
	searchInput.Prompt = "/ "

	filterInput := textinput.New()
	filterInput.Placeholder = "filter loaded titles"
	filterInput.CharLimit = 64
	filterInput.Prompt = "/ "

	m := Model{
		Catalog:     catalog,
		Session:     sess,
		Favorites:   favs,
		browsePager: pager.New(),
		searchPager: pager.New(pager.WithQueryRequired()),
		browseList:  components.NewMovieList(),
		searchList:  components.NewMovieList(),
		favList:     components.NewMovieList(),
		detail:      components.NewDetail(),
		form:        components.NewAuthForm(),
		searchInput: searchInput,
		filterInput: filterInput,
		view:        ViewBrowse,
		returnTo:    ViewBrowse,
		loc:         nav.Location{Route: nav.RouteBrowse, Params: nav.NewParams()},
	}

	m.browseList.IsFavorite = favs.IsFavorite
	m.searchList.IsFavorite = favs.IsFavorite
	m.favList.IsFavorite = favs.IsFavorite
	m.browseList.GenreName = catalog.GenreName
	m.searchList.GenreName = catalog.GenreName
	m.favList.GenreName = catalog.GenreName

	m.applyLocation(loc)
	return m
}

// applyLocation routes a parsed deep link into initial view state
func (m *Model) applyLocation(loc nav.Location) {
	filter := loc.Filter()

	switch loc.Route {
	case nav.RouteSearch:
		m.view = ViewSearch
		m.returnTo = ViewSearch
		m.searchInput.SetValue(filter.Query)
		m.searchInput.Focus()
		m.searchPager.SetFilter(domain.Filter{Query: filter.Query})
	case nav.RouteFavorites:
		m.returnTo = ViewFavorites
		if m.Session.IsAuthenticated() {
			m.view = ViewFavorites
			m.refreshFavorites()
		} else {
			// The favorites surface sits behind sign-in.
			m.view = ViewAccount
		}
	case nav.RouteMovie:
		if id := loc.Params.GetInt(nav.ParamID); id > 0 {
			m.pendingMovieID = id
			m.view = ViewDetail
			m.returnTo = ViewBrowse
			m.detail.SetLoading()
		}
	}

	// Browse filters apply regardless of the landing route, so backing out
	// of a movie deep link lands on the filtered browse surface.
	browse := domain.Filter{GenreID: filter.GenreID, Period: filter.Period}
	m.browsePager.SetFilter(browse)
	periods := domain.Periods()
	for i, p := range periods {
		if p == browse.Period {
			m.periodIdx = i
		}
	}

	m.loc = loc
	if m.loc.Route == "" {
		m.loc.Route = nav.RouteBrowse
	}
}

// Location returns the deep link describing the current UI state
func (m *Model) Location() nav.Location {
	return m.loc
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		LoadGenresCmd(m.Catalog),
		TickCmd(tickInterval),
		m.requestNext(SurfaceBrowse),
	}
	if m.searchPager.Filter().IsSearch() {
		cmds = append(cmds, m.requestNext(SurfaceSearch))
	}
	if m.pendingMovieID > 0 {
		cmds = append(cmds, LoadDetailCmd(m.Catalog, m.pendingMovieID))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.browseList.SpinnerFrame = m.SpinnerFrame
		m.searchList.SpinnerFrame = m.SpinnerFrame
		m.favList.SpinnerFrame = m.SpinnerFrame
		return m, TickCmd(tickInterval)

	case GenresLoadedMsg:
		m.genres = msg.Genres
		// Re-point the genre cursor at whatever a deep link selected.
		want := m.browsePager.Filter().GenreID
		m.genreIdx = 0
		for i, g := range m.genres {
			if g.ID == want {
				m.genreIdx = i + 1
			}
		}
		return m, nil

	case PageFetchedMsg:
		return m.handlePageFetched(msg)

	case PageFetchFailedMsg:
		return m.handlePageFailed(msg)

	case SearchDebounceMsg:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		return m, m.commitSearchQuery()

	case DetailLoadedMsg:
		m.detail.SetContent(msg.Detail, msg.Credits, msg.Videos, msg.Similar)
		return m, nil

	case SessionChangedMsg:
		return m.handleSessionChanged()

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusTimeout)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil

	case ErrMsg:
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusTimeout)
	}

	return m, nil
}

func (m Model) handlePageFetched(msg PageFetchedMsg) (tea.Model, tea.Cmd) {
	p, trigger := m.surface(msg.Surface)
	p.OnPageFetched(msg.Gen, msg.Page, msg.Movies, msg.TotalResults)
	trigger.Reset()
	m.syncSurface(msg.Surface)

	// The window may still show the sentinel when a page was short; keep
	// filling until it scrolls out of view or the results run out.
	return m, m.maybeContinue(msg.Surface)
}

func (m Model) handlePageFailed(msg PageFetchFailedMsg) (tea.Model, tea.Cmd) {
	p, _ := m.surface(msg.Surface)
	p.OnFetchFailed(msg.Gen)
	m.syncSurface(msg.Surface)

	m.StatusMsg = friendlyCatalogError(msg.Err)
	m.StatusIsErr = true
	return m, ClearStatusCmd(statusTimeout)
}

func (m Model) handleSessionChanged() (tea.Model, tea.Cmd) {
	st := m.Session.Snapshot()

	if st.Status == domain.StatusError {
		m.form.SetError(st.Err)
		return m, nil
	}

	if st.IsAuthenticated {
		m.form.Reset()
		if m.view == ViewAccount {
			if m.returnTo == ViewFavorites {
				m.refreshFavorites()
			}
			m.view = m.returnTo
		}
		name := ""
		if st.User != nil {
			name = st.User.Username
		}
		m.StatusMsg = "Signed in as " + name
		m.StatusIsErr = false
		return m, ClearStatusCmd(statusTimeout)
	}

	// Logged out
	m.StatusMsg = "Signed out"
	m.StatusIsErr = false
	if m.view == ViewFavorites {
		m.view = ViewBrowse
	}
	return m, ClearStatusCmd(statusTimeout)
}

// surface resolves a Surface to its pager and trigger
func (m *Model) surface(s Surface) (*pager.Pager, *ContinuationTrigger) {
	if s == SurfaceSearch {
		return m.searchPager, &m.searchTrigger
	}
	return m.browsePager, &m.browseTrigger
}

// syncSurface pushes pager state into the surface's list component
func (m *Model) syncSurface(s Surface) {
	p, _ := m.surface(s)
	list := &m.browseList
	if s == SurfaceSearch {
		list = &m.searchList
	}
	list.SetMovies(p.Items())
	list.Loading = p.Loading()
	list.Exhausted = p.Exhausted()
}

// requestNext asks the surface's pager for the next page number and issues
// the fetch. Returns nil when the pager refuses (loading, exhausted, or a
// query-required surface without a query).
func (m *Model) requestNext(s Surface) tea.Cmd {
	p, _ := m.surface(s)
	page, ok := p.NextPage()
	if !ok {
		return nil
	}
	m.syncSurface(s)
	return FetchPageCmd(m.Catalog, s, p.Generation(), page, p.Filter())
}

// maybeContinue fires a next-page request when the sentinel just became
// visible and the surface's gates are open
func (m *Model) maybeContinue(s Surface) tea.Cmd {
	p, trigger := m.surface(s)
	list := &m.browseList
	active := true
	if s == SurfaceSearch {
		list = &m.searchList
		active = p.Filter().IsSearch()
	}
	if trigger.ShouldFire(list.SentinelVisible(), p.Loading(), p.Exhausted(), active) {
		return m.requestNext(s)
	}
	return nil
}

// setBrowseFilter writes the filter into the location binding and applies
// the bound filter to the browse pager. The location is the sole channel
// into the pager's filter-change path, so the deep link and the accumulator
// can never disagree.
func (m *Model) setBrowseFilter(f domain.Filter) tea.Cmd {
	m.loc.Route = nav.RouteBrowse
	m.loc.SetFilter(f)
	if !m.browsePager.SetFilter(m.loc.Filter()) {
		return nil
	}
	m.browseTrigger.Reset()
	m.browseList.Reset()
	m.syncSurface(SurfaceBrowse)
	return m.requestNext(SurfaceBrowse)
}

// commitSearchQuery applies the settled search input through the location
// binding to the search pager
func (m *Model) commitSearchQuery() tea.Cmd {
	m.loc.Route = nav.RouteSearch
	m.loc.SetFilter(domain.Filter{Query: strings.TrimSpace(m.searchInput.Value())})
	if !m.searchPager.SetFilter(m.loc.Filter()) {
		return nil
	}
	m.searchTrigger.Reset()
	m.searchList.Reset()
	m.syncSurface(SurfaceSearch)
	return m.requestNext(SurfaceSearch)
}

// currentFilter is the browse filter implied by the genre/period cursors
func (m *Model) currentFilter() domain.Filter {
	f := domain.Filter{}
	if m.genreIdx > 0 && m.genreIdx <= len(m.genres) {
		f.GenreID = m.genres[m.genreIdx-1].ID
	}
	periods := domain.Periods()
	if m.periodIdx > 0 && m.periodIdx < len(periods) {
		f.Period = periods[m.periodIdx]
	}
	return f
}

// openDetailCmd switches to the detail view and starts loading the movie
func (m *Model) openDetailCmd(id int) tea.Cmd {
	if m.view != ViewDetail {
		m.returnTo = m.view
	}
	m.view = ViewDetail
	m.detail.SetLoading()
	m.loc = nav.Location{Route: nav.RouteMovie, Params: nav.NewParams()}
	m.loc.Params.Set(nav.ParamID, strconv.Itoa(id))
	return LoadDetailCmd(m.Catalog, id)
}

// refreshFavorites re-syncs the favorites list from the store
func (m *Model) refreshFavorites() {
	m.favList.SetMovies(m.Favorites.Movies())
	m.favList.Exhausted = true
}

func (m *Model) updateLayout() {
	bodyHeight := m.Height - chromeHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	listWidth := m.Width
	m.browseList.SetSize(listWidth, bodyHeight)
	m.searchList.SetSize(listWidth, bodyHeight)
	m.favList.SetSize(listWidth, bodyHeight)
	m.detail.SetSize(m.Width-2, bodyHeight)
	m.form.SetSize(m.Width)
	m.searchInput.Width = m.Width - 6
	m.filterInput.Width = m.Width - 6
}

// activeList returns the list component for the current view, or nil when
// the view has none
func (m *Model) activeList() *components.MovieList {
	switch m.view {
	case ViewBrowse:
		return &m.browseList
	case ViewSearch:
		return &m.searchList
	case ViewFavorites:
		return &m.favList
	}
	return nil
}

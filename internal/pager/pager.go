// Package pager accumulates paged catalog responses into a single
// deduplicated list per listing surface. Responses are accepted only when
// their page number and generation match the controller's expectation, which
// stands in for request cancellation: a slow page from a superseded filter
// is simply discarded.
package pager

import (
	"log/slog"

	"github.com/drake/reel/internal/domain"
)

const (
	// DefaultPageSize is the catalog's fixed listing page size.
	DefaultPageSize = 20

	// DefaultMaxResults is the catalog's enumeration hard cap. The API
	// stops returning results past this point regardless of the reported
	// total, so the cap clamps the exhaustion check.
	DefaultMaxResults = 10000
)

// Pager is the pagination controller for one listing surface. It is not
// safe for concurrent use; it is confined to the UI update loop and fed by
// messages carrying the results of background fetches.
type Pager struct {
	pageSize   int
	maxResults int

	// needQuery gates surfaces that are inert without a free-text query.
	needQuery bool

	filter    domain.Filter
	items     []domain.Movie
	seen      map[int]struct{}
	page      int // last accepted page, 0 = none yet
	total     int // server-reported total results, -1 = unknown
	exhausted bool
	loading   bool
	gen       uint64 // incremented on every reset

	logger *slog.Logger
}

// Option configures a Pager.
type Option func(*Pager)

// WithPageSize overrides the catalog page size.
func WithPageSize(n int) Option {
	return func(p *Pager) { p.pageSize = n }
}

// WithMaxResults overrides the enumeration hard cap.
func WithMaxResults(n int) Option {
	return func(p *Pager) { p.maxResults = n }
}

// WithQueryRequired makes the pager refuse page requests while the filter
// carries no query. The search surface sets this.
func WithQueryRequired() Option {
	return func(p *Pager) { p.needQuery = true }
}

// WithLogger sets the pager's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pager) { p.logger = logger }
}

// New creates a pagination controller.
func New(opts ...Option) *Pager {
	p := &Pager{
		pageSize:   DefaultPageSize,
		maxResults: DefaultMaxResults,
		seen:       make(map[int]struct{}),
		total:      -1,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetFilter installs a new filter. If it differs from the filter that
// produced the current accumulation, the accumulator is fully reset and
// SetFilter reports true: the caller should issue a page-1 request via
// NextPage.
func (p *Pager) SetFilter(filter domain.Filter) bool {
	if filter == p.filter && p.gen > 0 {
		return false
	}
	p.filter = filter
	p.reset()
	return true
}

// reset clears the accumulation and invalidates in-flight responses.
func (p *Pager) reset() {
	p.items = nil
	p.seen = make(map[int]struct{})
	p.page = 0
	p.total = -1
	p.exhausted = false
	p.loading = false
	p.gen++
}

// NextPage returns the page number to fetch next and marks the pager
// loading. It reports false when a request must not be issued: already
// loading, exhausted, or no active query context.
func (p *Pager) NextPage() (page int, ok bool) {
	if p.loading || p.exhausted {
		return 0, false
	}
	if p.needQuery && p.filter.Query == "" {
		return 0, false
	}
	p.loading = true
	return p.page + 1, true
}

// OnPageFetched merges one fetched page into the accumulation. Responses
// whose generation or page number do not match the pager's expectation are
// stale remnants of a superseded filter and are ignored entirely.
// totalResults < 0 means the server did not report a total.
func (p *Pager) OnPageFetched(gen uint64, page int, movies []domain.Movie, totalResults int) {
	if gen != p.gen || page != p.page+1 {
		p.logger.Debug("discarding stale page",
			"page", page, "expected", p.page+1, "gen", gen, "currentGen", p.gen)
		return
	}

	for _, m := range movies {
		if _, dup := p.seen[m.ID]; dup {
			continue
		}
		p.seen[m.ID] = struct{}{}
		p.items = append(p.items, m)
	}

	p.page = page
	if totalResults >= 0 {
		p.total = totalResults
	}
	p.loading = false

	// An empty page is the authoritative exhaustion signal; the reported
	// total only acts as a secondary cap, clamped at the hard limit.
	if len(movies) == 0 {
		p.exhausted = true
	} else if p.total >= 0 && p.page*p.pageSize >= min(p.total, p.maxResults) {
		p.exhausted = true
	}
}

// OnFetchFailed clears the loading flag after a failed request for the
// current generation. No page is accepted and exhaustion is unchanged; the
// user re-triggers by scrolling again.
func (p *Pager) OnFetchFailed(gen uint64) {
	if gen != p.gen {
		return
	}
	p.loading = false
}

// Filter returns the filter that produced the current accumulation.
func (p *Pager) Filter() domain.Filter { return p.filter }

// Items returns the accumulated, deduplicated list in first-seen order.
// The returned slice is shared; callers must not mutate it.
func (p *Pager) Items() []domain.Movie { return p.items }

// Page returns the last accepted page number (0 before any page).
func (p *Pager) Page() int { return p.page }

// TotalResults returns the server-reported total, or -1 when unknown.
func (p *Pager) TotalResults() int { return p.total }

// Exhausted reports whether no further pages should be requested.
func (p *Pager) Exhausted() bool { return p.exhausted }

// Loading reports whether a page request is in flight.
func (p *Pager) Loading() bool { return p.loading }

// Generation returns the token that fetch results must carry to be accepted.
func (p *Pager) Generation() uint64 { return p.gen }

// Len returns the number of accumulated items.
func (p *Pager) Len() int { return len(p.items) }

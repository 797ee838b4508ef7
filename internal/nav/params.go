// Package nav binds filter state to an addressable location string, so the
// active filters of a listing surface round-trip through a shareable
// deep link such as reel://browse?genre=28&period=3.
package nav

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/drake/reel/internal/domain"
)

// Scheme is the deep-link scheme.
const Scheme = "reel"

// Routes addressable by a location.
const (
	RouteBrowse    = "browse"
	RouteSearch    = "search"
	RouteFavorites = "favorites"
	RouteMovie     = "movie"
)

// Parameter names carried in a location's query.
const (
	ParamGenre  = "genre"
	ParamPeriod = "period"
	ParamQuery  = "query"
	ParamID     = "id"
)

// Params holds the named parameters of a location. Reading an absent or
// unparseable parameter yields a defined empty value; writing merges into
// the existing set without clobbering unrelated parameters.
type Params struct {
	values url.Values
}

// NewParams returns an empty parameter set.
func NewParams() Params {
	return Params{values: url.Values{}}
}

// Get returns the parameter value, or "" when absent.
func (p Params) Get(key string) string {
	if p.values == nil {
		return ""
	}
	return p.values.Get(key)
}

// GetInt returns the parameter as an int; absent or unparseable values are
// treated as absent and yield 0.
func (p Params) GetInt(key string) int {
	n, err := strconv.Atoi(p.Get(key))
	if err != nil {
		return 0
	}
	return n
}

// Set merges one parameter into the set, replacing its previous value only.
// Setting an empty value removes the parameter.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = url.Values{}
	}
	if value == "" {
		p.values.Del(key)
		return
	}
	p.values.Set(key, value)
}

// Encode returns the standard URL encoding of the parameters.
func (p Params) Encode() string {
	if p.values == nil {
		return ""
	}
	return p.values.Encode()
}

// Location is an addressable UI state: a route plus its parameters.
type Location struct {
	Route  string
	Params Params
}

// Parse decodes a location string. It accepts both the full scheme form
// ("reel://search?query=alien") and the bare form ("search?query=alien").
// Unparseable input never fails: the query part degrades to empty
// parameters and an empty route falls back to browse.
func Parse(s string) Location {
	s = strings.TrimPrefix(strings.TrimSpace(s), Scheme+"://")

	route := s
	rawQuery := ""
	if i := strings.IndexByte(s, '?'); i >= 0 {
		route, rawQuery = s[:i], s[i+1:]
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}

	route = strings.Trim(route, "/")
	if route == "" {
		route = RouteBrowse
	}

	return Location{Route: route, Params: Params{values: values}}
}

// String returns the canonical deep-link form of the location.
func (l Location) String() string {
	s := Scheme + "://" + l.Route
	if encoded := l.Params.Encode(); encoded != "" {
		s += "?" + encoded
	}
	return s
}

// Filter decodes the filter state carried by the location's parameters.
// Unparseable values read as absent.
func (l Location) Filter() domain.Filter {
	f := domain.Filter{
		GenreID: l.Params.GetInt(ParamGenre),
		Query:   strings.TrimSpace(l.Params.Get(ParamQuery)),
	}

	period := l.Params.GetInt(ParamPeriod)
	if period > 0 && period <= int(domain.PeriodClassic) {
		f.Period = domain.Period(period)
	}

	return f
}

// SetFilter writes the filter state into the location's parameters, merging
// with whatever unrelated parameters the location already carries.
func (l *Location) SetFilter(f domain.Filter) {
	setOrClearInt(&l.Params, ParamGenre, f.GenreID)
	setOrClearInt(&l.Params, ParamPeriod, int(f.Period))
	l.Params.Set(ParamQuery, f.Query)
}

func setOrClearInt(p *Params, key string, n int) {
	if n == 0 {
		p.Set(key, "")
		return
	}
	p.Set(key, strconv.Itoa(n))
}

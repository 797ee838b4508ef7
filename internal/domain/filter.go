package domain

import (
	"fmt"
	"time"
)

// Period names a fixed release-date bucket used by the browse surface.
type Period int

const (
	PeriodAny Period = iota
	PeriodThisYear
	Period2020s
	Period2010s
	Period2000s
	Period1990s
	Period1980s
	PeriodClassic // everything before 1980
)

// periodRange holds the inclusive date bounds for a bucket.
type periodRange struct {
	label string
	gte   string
	lte   string
}

var periodRanges = map[Period]periodRange{
	Period2020s:    {label: "2020s", gte: "2020-01-01", lte: "2029-12-31"},
	Period2010s:    {label: "2010s", gte: "2010-01-01", lte: "2019-12-31"},
	Period2000s:    {label: "2000s", gte: "2000-01-01", lte: "2009-12-31"},
	Period1990s:    {label: "1990s", gte: "1990-01-01", lte: "1999-12-31"},
	Period1980s:    {label: "1980s", gte: "1980-01-01", lte: "1989-12-31"},
	PeriodClassic:  {label: "Before 1980", gte: "", lte: "1979-12-31"},
}

// Range returns the inclusive release-date bounds for the bucket.
// Empty strings mean "unbounded" on that side.
func (p Period) Range() (gte, lte string) {
	if p == PeriodThisYear {
		year := time.Now().Year()
		return fmt.Sprintf("%d-01-01", year), fmt.Sprintf("%d-12-31", year)
	}
	r, ok := periodRanges[p]
	if !ok {
		return "", ""
	}
	return r.gte, r.lte
}

// String returns the display label for the bucket.
func (p Period) String() string {
	if p == PeriodThisYear {
		return "This year"
	}
	r, ok := periodRanges[p]
	if !ok {
		return "Any period"
	}
	return r.label
}

// Periods lists all selectable buckets in display order.
func Periods() []Period {
	return []Period{
		PeriodAny,
		PeriodThisYear,
		Period2020s,
		Period2010s,
		Period2000s,
		Period1990s,
		Period1980s,
		PeriodClassic,
	}
}

// Filter is the sole input that determines which accumulated list a listing
// surface is building. It is comparable so a changed filter can be detected
// with ==.
type Filter struct {
	GenreID int    // 0 = all genres
	Period  Period // PeriodAny = all dates
	Query   string // non-empty only on the search surface
}

// IsSearch reports whether the filter carries a free-text query.
func (f Filter) IsSearch() bool {
	return f.Query != ""
}

// IsZero reports whether no filter criteria are set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// MovieList renders a scrollable column of movies. It tracks a cursor and a
// window offset, and reports whether the slot below the last row is on
// screen, which is what drives incremental page loading.
type MovieList struct {
	movies []domain.Movie

	// Local filter ("/" within the list). When active, filteredIdx maps
	// visible positions back into movies.
	filterQuery string
	filteredIdx []int

	cursor int
	offset int
	width  int
	height int

	// IsFavorite marks rows; GenreName resolves the primary genre label.
	IsFavorite func(id int) bool
	GenreName  func(id int) string

	// Loading and Exhausted control the sentinel row text.
	Loading   bool
	Exhausted bool

	// SpinnerFrame is advanced by the app's tick while loading.
	SpinnerFrame int
}

// NewMovieList creates an empty movie list
func NewMovieList() MovieList {
	return MovieList{}
}

// SetSize updates the list dimensions
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampScroll()
}

// SetMovies replaces the list contents. The cursor is preserved when the
// new slice still covers it, so appending pages does not jump the view.
func (l *MovieList) SetMovies(movies []domain.Movie) {
	l.movies = movies
	if l.filterQuery != "" {
		l.applyFilter()
	}
	if l.cursor >= l.visibleLen() {
		l.cursor = l.visibleLen() - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

// Reset clears contents and scroll position
func (l *MovieList) Reset() {
	l.movies = nil
	l.filterQuery = ""
	l.filteredIdx = nil
	l.cursor = 0
	l.offset = 0
}

// SetFilterQuery applies a local fuzzy filter over the loaded rows
func (l *MovieList) SetFilterQuery(query string) {
	l.filterQuery = query
	l.applyFilter()
	l.cursor = 0
	l.offset = 0
}

// FilterQuery returns the active local filter
func (l *MovieList) FilterQuery() string { return l.filterQuery }

func (l *MovieList) applyFilter() {
	if l.filterQuery == "" {
		l.filteredIdx = nil
		return
	}
	titles := make([]string, len(l.movies))
	for i, m := range l.movies {
		titles[i] = strings.ToLower(m.Title)
	}
	matches := fuzzy.Find(strings.ToLower(l.filterQuery), titles)
	l.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
	}
}

func (l *MovieList) visibleLen() int {
	if l.filterQuery != "" {
		return len(l.filteredIdx)
	}
	return len(l.movies)
}

func (l *MovieList) movieAt(pos int) (domain.Movie, bool) {
	if pos < 0 || pos >= l.visibleLen() {
		return domain.Movie{}, false
	}
	if l.filterQuery != "" {
		return l.movies[l.filteredIdx[pos]], true
	}
	return l.movies[pos], true
}

// Selected returns the movie under the cursor
func (l *MovieList) Selected() (domain.Movie, bool) {
	return l.movieAt(l.cursor)
}

// Len returns the number of visible rows
func (l *MovieList) Len() int { return l.visibleLen() }

// MoveUp moves the cursor up one row
func (l *MovieList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

// MoveDown moves the cursor down one row
func (l *MovieList) MoveDown() {
	if l.cursor < l.visibleLen()-1 {
		l.cursor++
	}
	l.clampScroll()
}

// HalfPageUp moves the cursor up half a window
func (l *MovieList) HalfPageUp() {
	l.cursor -= l.rowCapacity() / 2
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

// HalfPageDown moves the cursor down half a window
func (l *MovieList) HalfPageDown() {
	l.cursor += l.rowCapacity() / 2
	if l.cursor > l.visibleLen()-1 {
		l.cursor = l.visibleLen() - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

// GoToTop moves the cursor to the first row
func (l *MovieList) GoToTop() {
	l.cursor = 0
	l.offset = 0
}

// GoToBottom moves the cursor to the last row
func (l *MovieList) GoToBottom() {
	l.cursor = l.visibleLen() - 1
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

// SentinelVisible reports whether the row slot below the last movie is
// inside the current window. True means the user has scrolled to where
// more content would appear.
func (l *MovieList) SentinelVisible() bool {
	if l.filterQuery != "" {
		// Local filtering hides the tail; never treat it as reaching the end.
		return false
	}
	// The sentinel row is rendered whenever the window reaches past the
	// last movie, so visibility is >=, not >.
	return l.offset+l.rowCapacity() >= len(l.movies)
}

// rowCapacity is the number of movie rows that fit, leaving one line for
// the sentinel row.
func (l *MovieList) rowCapacity() int {
	if l.height <= 1 {
		return 1
	}
	return l.height - 1
}

func (l *MovieList) clampScroll() {
	capacity := l.rowCapacity()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+capacity {
		l.offset = l.cursor - capacity + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list
func (l *MovieList) View() string {
	var b strings.Builder

	capacity := l.rowCapacity()
	end := l.offset + capacity
	if end > l.visibleLen() {
		end = l.visibleLen()
	}

	for pos := l.offset; pos < end; pos++ {
		movie, _ := l.movieAt(pos)
		b.WriteString(l.renderRow(movie, pos == l.cursor))
		b.WriteString("\n")
	}

	if end == l.visibleLen() {
		b.WriteString(l.renderSentinel())
	}

	return b.String()
}

func (l *MovieList) renderRow(movie domain.Movie, selected bool) string {
	fav := styles.NotFavoriteChar
	if l.IsFavorite != nil && l.IsFavorite(movie.ID) {
		fav = styles.FavoriteStyle.Render(styles.FavoriteChar)
	}

	year := "----"
	if y := movie.ReleaseYear(); y != 0 {
		year = strconv.Itoa(y)
	}
	rating := movie.FormattedRating()

	genre := ""
	if l.GenreName != nil && len(movie.GenreIDs) > 0 {
		genre = l.GenreName(movie.GenreIDs[0])
	}

	// fav(1) year(4) rating(4) paddings; remainder split title/genre
	titleWidth := l.width - 16 - len(genre)
	if titleWidth < 10 {
		titleWidth = 10
		genre = ""
	}
	title := styles.Pad(styles.Truncate(movie.Title, titleWidth), titleWidth)

	row := fmt.Sprintf("%s %s  %s  %s", fav, title, year, styles.RatingStyle.Render(rating))
	if genre != "" {
		row += "  " + styles.DimStyle.Render(genre)
	}

	if selected {
		return styles.SelectedItemStyle.Render(row)
	}
	return styles.NormalItemStyle.Render(row)
}

func (l *MovieList) renderSentinel() string {
	switch {
	case l.Loading:
		frame := styles.SpinnerFrames[l.SpinnerFrame%len(styles.SpinnerFrames)]
		return styles.DimStyle.Render(fmt.Sprintf("  %s loading more...", styles.SpinnerStyle.Render(frame)))
	case l.visibleLen() == 0:
		return styles.DimStyle.Render("  nothing here yet")
	case l.Exhausted:
		return styles.DimStyle.Render("  end of results")
	default:
		return styles.DimStyle.Render("  ···")
	}
}

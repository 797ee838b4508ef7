package components

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drake/reel/internal/domain"
)

func listWith(n, height int) MovieList {
	l := NewMovieList()
	l.SetSize(60, height)
	movies := make([]domain.Movie, n)
	for i := range movies {
		movies[i] = domain.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i+1)}
	}
	l.SetMovies(movies)
	return l
}

func TestSentinelHiddenWhileContentFillsWindow(t *testing.T) {
	// 9 rows fit (one line reserved for the sentinel); 30 movies overflow.
	l := listWith(30, 10)
	assert.False(t, l.SentinelVisible())
}

func TestSentinelVisibleAtBottom(t *testing.T) {
	l := listWith(30, 10)
	l.GoToBottom()
	assert.True(t, l.SentinelVisible())
}

func TestSentinelVisibleWhenListIsShort(t *testing.T) {
	l := listWith(3, 10)
	assert.True(t, l.SentinelVisible())
}

func TestSentinelHiddenWhileLocallyFiltered(t *testing.T) {
	l := listWith(30, 10)
	l.GoToBottom()
	l.SetFilterQuery("movie 1")
	assert.False(t, l.SentinelVisible())
}

func TestCursorSurvivesAppendedPage(t *testing.T) {
	l := listWith(20, 10)
	l.GoToBottom()
	selectedBefore, _ := l.Selected()

	movies := make([]domain.Movie, 40)
	for i := range movies {
		movies[i] = domain.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i+1)}
	}
	l.SetMovies(movies)

	selectedAfter, ok := l.Selected()
	assert.True(t, ok)
	assert.Equal(t, selectedBefore.ID, selectedAfter.ID)
}

func TestRowRendersYearFromReleaseDate(t *testing.T) {
	l := NewMovieList()
	l.SetSize(60, 10)
	l.SetMovies([]domain.Movie{
		{ID: 1, Title: "Alien", ReleaseDate: "1979-05-25", VoteAverage: 8.5},
		{ID: 2, Title: "Undated"},
	})

	view := l.View()
	assert.Contains(t, view, "1979")
	assert.Contains(t, view, "8.5")
	// Missing release dates render as a placeholder, not year zero.
	assert.Contains(t, view, "----")
	assert.NotContains(t, view, "0000")
}

func TestLocalFilterMatchesTitles(t *testing.T) {
	l := NewMovieList()
	l.SetSize(60, 10)
	l.SetMovies([]domain.Movie{
		{ID: 1, Title: "Alien"},
		{ID: 2, Title: "The Terminator"},
		{ID: 3, Title: "Aliens"},
	})

	l.SetFilterQuery("alien")
	assert.Equal(t, 2, l.Len())

	l.SetFilterQuery("")
	assert.Equal(t, 3, l.Len())
}

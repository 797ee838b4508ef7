package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/reel/internal/domain"
)

func TestDiscoverMoviesBuildsQuery(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix","vote_average":8.2,"release_date":"1999-03-30"}],"total_pages":3,"total_results":45}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "en-US", nil)
	filter := domain.Filter{GenreID: 28, Period: domain.Period1990s}

	page, err := c.DiscoverMovies(context.Background(), filter, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"test-key"}, gotQuery["api_key"])
	assert.Equal(t, []string{"28"}, gotQuery["with_genres"])
	assert.Equal(t, []string{"1990-01-01"}, gotQuery["release_date.gte"])
	assert.Equal(t, []string{"1999-12-31"}, gotQuery["release_date.lte"])
	assert.Equal(t, []string{"1"}, gotQuery["page"])

	require.Len(t, page.Movies, 1)
	assert.Equal(t, 603, page.Movies[0].ID)
	assert.Equal(t, 1999, page.Movies[0].ReleaseYear())
	assert.Equal(t, 45, page.TotalResults)
}

func TestSearchMovies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "alien", r.URL.Query().Get("query"))
		w.Write([]byte(`{"page":2,"results":[],"total_pages":2,"total_results":21}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", nil)
	page, err := c.SearchMovies(context.Background(), "alien", 2)
	require.NoError(t, err)
	assert.Empty(t, page.Movies)
	assert.Equal(t, 21, page.TotalResults)
}

func TestGetMovieNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", nil)
	_, err := c.GetMovie(context.Background(), 999999999)
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestErrorStatusSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", "", nil)
	_, err := c.GetGenres(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	c := NewClient(srv.URL, "test-key", "", nil)
	_, err := c.GetGenres(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogOffline)
}

func TestGetMovieDetailDefaultsOptionalFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Minimal payload: optional fields absent.
		w.Write([]byte(`{"id":603,"title":"The Matrix"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", nil)
	detail, err := c.GetMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", detail.Title)
	assert.Empty(t, detail.Genres)
	assert.Zero(t, detail.Runtime)
	assert.Equal(t, "", detail.FormattedRuntime())
}

func TestGetMovieCredits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603/credits", r.URL.Path)
		w.Write([]byte(`{"id":603,"cast":[{"id":1,"name":"Keanu Reeves","character":"Neo","order":0}],"crew":[{"id":2,"name":"Lana Wachowski","job":"Director","department":"Directing"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", nil)
	credits, err := c.GetMovieCredits(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, credits.Cast, 1)

	director, ok := credits.Director()
	require.True(t, ok)
	assert.Equal(t, "Lana Wachowski", director.Name)
}

func TestGetMovieVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":603,"results":[{"id":"v1","key":"abc123","name":"Official Trailer","site":"YouTube","type":"Trailer","official":true}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "", nil)
	videos, err := c.GetMovieVideos(context.Background(), 603)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", videos[0].WatchURL())
}

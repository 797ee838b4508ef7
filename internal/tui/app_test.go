package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/reel/internal/auth"
	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/favorites"
	"github.com/drake/reel/internal/nav"
	"github.com/drake/reel/internal/service"
	"github.com/drake/reel/internal/session"
	"github.com/drake/reel/internal/store"
)

// stubRepo satisfies the catalog interface for model tests; the model tests
// drive pagination by injecting messages directly, so the stub never fires.
type stubRepo struct{}

func (stubRepo) DiscoverMovies(ctx context.Context, filter domain.Filter, page int) (*domain.Page, error) {
	return &domain.Page{Page: page}, nil
}

func (stubRepo) SearchMovies(ctx context.Context, query string, page int) (*domain.Page, error) {
	return &domain.Page{Page: page}, nil
}

func (stubRepo) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	return nil, nil
}

func (stubRepo) GetMovie(ctx context.Context, id int) (*domain.MovieDetail, error) {
	return &domain.MovieDetail{Movie: domain.Movie{ID: id}}, nil
}

func (stubRepo) GetMovieCredits(ctx context.Context, id int) (*domain.Credits, error) {
	return &domain.Credits{}, nil
}

func (stubRepo) GetMovieImages(ctx context.Context, id int) (*domain.ImageSet, error) {
	return &domain.ImageSet{}, nil
}

func (stubRepo) GetSimilarMovies(ctx context.Context, id int, page int) (*domain.Page, error) {
	return &domain.Page{Page: page}, nil
}

func (stubRepo) GetMovieVideos(ctx context.Context, id int) ([]domain.Video, error) {
	return nil, nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	st, err := store.New("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	sess := session.NewStore(auth.NewMock("test-secret", nil), st, nil)
	favs := favorites.NewStore(st, nil)
	favs.Load()
	catalog := service.NewCatalogService(stubRepo{}, nil)

	m := NewModel(catalog, sess, favs, nav.Parse("reel://browse"))
	m.Width = 80
	m.Height = 14
	m.Ready = true
	m.updateLayout()
	return m
}

func makeMovies(start, n int) []domain.Movie {
	movies := make([]domain.Movie, n)
	for i := range movies {
		movies[i] = domain.Movie{ID: start + i, Title: fmt.Sprintf("Movie %d", start+i)}
	}
	return movies
}

func TestAcceptedPageFillsList(t *testing.T) {
	m := newTestModel(t)

	page, ok := m.browsePager.NextPage()
	require.True(t, ok)
	require.Equal(t, 1, page)

	updated, _ := m.Update(PageFetchedMsg{
		Surface:      SurfaceBrowse,
		Gen:          m.browsePager.Generation(),
		Page:         1,
		Movies:       makeMovies(1, 20),
		TotalResults: 45,
	})
	m = updated.(Model)

	assert.Equal(t, 20, m.browseList.Len())
	assert.False(t, m.browsePager.Loading())
	assert.Equal(t, 1, m.browsePager.Page())
}

func TestShortPageKeepsFilling(t *testing.T) {
	m := newTestModel(t)

	_, ok := m.browsePager.NextPage()
	require.True(t, ok)

	// Five rows leave the sentinel on screen, so accepting the page must
	// immediately issue the next request.
	updated, cmd := m.Update(PageFetchedMsg{
		Surface:      SurfaceBrowse,
		Gen:          m.browsePager.Generation(),
		Page:         1,
		Movies:       makeMovies(1, 5),
		TotalResults: 45,
	})
	m = updated.(Model)

	require.NotNil(t, cmd)
	assert.True(t, m.browsePager.Loading())
}

func TestScrollToBottomOfFullWindowRequestsNextPage(t *testing.T) {
	m := newTestModel(t)

	// Two full pages overflow the window, so the sentinel starts hidden.
	for page := 1; page <= 2; page++ {
		_, ok := m.browsePager.NextPage()
		require.True(t, ok)
		updated, _ := m.Update(PageFetchedMsg{
			Surface:      SurfaceBrowse,
			Gen:          m.browsePager.Generation(),
			Page:         page,
			Movies:       makeMovies((page-1)*20+1, 20),
			TotalResults: 100,
		})
		m = updated.(Model)
	}
	require.False(t, m.browseList.SentinelVisible())

	// Reaching the bottom puts the sentinel on screen and must fire the
	// next request even though the window is exactly full.
	m.browseList.GoToBottom()
	cmd := m.continueForView()

	require.NotNil(t, cmd)
	assert.True(t, m.browsePager.Loading())
	assert.Equal(t, 2, m.browsePager.Page())
}

func TestStaleGenerationPageIgnored(t *testing.T) {
	m := newTestModel(t)

	_, ok := m.browsePager.NextPage()
	require.True(t, ok)
	staleGen := m.browsePager.Generation()

	// Filter change resets the accumulator before the response lands.
	m.setBrowseFilter(domain.Filter{GenreID: 28})

	updated, _ := m.Update(PageFetchedMsg{
		Surface:      SurfaceBrowse,
		Gen:          staleGen,
		Page:         1,
		Movies:       makeMovies(1, 20),
		TotalResults: 45,
	})
	m = updated.(Model)

	assert.Equal(t, 0, m.browseList.Len())
}

func TestFetchFailureSurfacesStatus(t *testing.T) {
	m := newTestModel(t)

	_, ok := m.browsePager.NextPage()
	require.True(t, ok)

	updated, _ := m.Update(PageFetchFailedMsg{
		Surface: SurfaceBrowse,
		Gen:     m.browsePager.Generation(),
		Err:     domain.ErrCatalogOffline,
	})
	m = updated.(Model)

	assert.True(t, m.StatusIsErr)
	assert.Equal(t, "Can't reach the catalog. Check your connection.", m.StatusMsg)
	assert.False(t, m.browsePager.Loading())
}

func TestToggleFavoriteRequiresSignIn(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.toggleFavorite(domain.Movie{ID: 7, Title: "Seven"})
	m = updated.(Model)

	assert.Equal(t, ViewAccount, m.view)
	assert.Equal(t, 0, m.Favorites.Len())
}

func TestToggleFavoriteWhenSignedIn(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.Session.Login(context.Background(), auth.DemoEmail, auth.DemoPassword))

	movie := domain.Movie{ID: 7, Title: "Seven"}
	updated, _ := m.toggleFavorite(movie)
	m = updated.(Model)
	assert.True(t, m.Favorites.IsFavorite(7))

	updated, _ = m.toggleFavorite(movie)
	m = updated.(Model)
	assert.False(t, m.Favorites.IsFavorite(7))
}

func TestSearchDeepLinkActivatesSearch(t *testing.T) {
	m := newTestModel(t)

	loc := nav.Parse("reel://search?query=alien")
	m.applyLocation(loc)

	assert.Equal(t, ViewSearch, m.view)
	assert.Equal(t, "alien", m.searchPager.Filter().Query)

	page, ok := m.searchPager.NextPage()
	assert.True(t, ok)
	assert.Equal(t, 1, page)
}

func TestSearchWithoutQueryNeverPages(t *testing.T) {
	m := newTestModel(t)
	m.view = ViewSearch

	_, ok := m.searchPager.NextPage()
	assert.False(t, ok)
	assert.Nil(t, m.maybeContinue(SurfaceSearch))
}

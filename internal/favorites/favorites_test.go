package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/store"
)

func memStore(t *testing.T) *store.StateStore {
	t.Helper()
	s, err := store.New("")
	require.NoError(t, err)
	return s
}

func movie(id int, title string) domain.Movie {
	return domain.Movie{ID: id, Title: title, VoteAverage: 7.5}
}

func stored(t *testing.T, storage *store.StateStore) []domain.Movie {
	t.Helper()
	var movies []domain.Movie
	storage.Read(store.BucketFavorites, store.KeyFavoritesList, &movies)
	return movies
}

func TestAddIsIdempotent(t *testing.T) {
	storage := memStore(t)
	s := NewStore(storage, nil)
	s.Load()

	s.Add(movie(1, "Alien"))
	s.Add(movie(1, "Alien"))

	movies := s.Movies()
	require.Len(t, movies, 1)
	assert.Equal(t, "Alien", movies[0].Title)
	assert.Len(t, stored(t, storage), 1)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := NewStore(memStore(t), nil)
	s.Load()

	s.Add(movie(3, "C"))
	s.Add(movie(1, "A"))
	s.Add(movie(2, "B"))

	movies := s.Movies()
	require.Len(t, movies, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{movies[0].ID, movies[1].ID, movies[2].ID})
}

func TestRemove(t *testing.T) {
	storage := memStore(t)
	s := NewStore(storage, nil)
	s.Load()

	s.Add(movie(1, "Alien"))
	s.Add(movie(2, "Aliens"))
	s.Remove(1)

	assert.False(t, s.IsFavorite(1))
	assert.True(t, s.IsFavorite(2))
	assert.Len(t, stored(t, storage), 1)
}

func TestRemoveAbsentStillWritesThrough(t *testing.T) {
	storage := memStore(t)
	s := NewStore(storage, nil)
	s.Load()

	s.Remove(99)

	// The write-through happens regardless: an empty list is persisted.
	assert.True(t, storage.Has(store.BucketFavorites, store.KeyFavoritesList))
	assert.Empty(t, stored(t, storage))
}

func TestLoadRehydrates(t *testing.T) {
	storage := memStore(t)
	require.NoError(t, storage.Write(store.BucketFavorites, store.KeyFavoritesList,
		[]domain.Movie{movie(5, "Heat"), movie(7, "Ronin")}))

	s := NewStore(storage, nil)
	assert.Equal(t, domain.StatusIdle, s.Status(), "set starts empty before Load")
	assert.Zero(t, s.Len())

	s.Load()

	assert.Equal(t, domain.StatusSuccess, s.Status())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.IsFavorite(5))
}

func TestLoadCorruptStorageRecovers(t *testing.T) {
	storage := memStore(t)
	require.NoError(t, storage.Write(store.BucketFavorites, store.KeyFavoritesList, "not json"))

	s := NewStore(storage, nil)
	s.Load()

	// Corrupt cache is not a user-facing error: empty set, success status,
	// and the offending key is gone.
	assert.Equal(t, domain.StatusSuccess, s.Status())
	assert.Empty(t, s.Movies())
	assert.Empty(t, s.Err())
	assert.False(t, storage.Has(store.BucketFavorites, store.KeyFavoritesList))
}

func TestClear(t *testing.T) {
	storage := memStore(t)
	s := NewStore(storage, nil)
	s.Load()
	s.Add(movie(1, "Alien"))

	s.Clear()

	assert.Zero(t, s.Len())
	assert.False(t, storage.Has(store.BucketFavorites, store.KeyFavoritesList))
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage, err := store.New(dir)
	require.NoError(t, err)

	s := NewStore(storage, nil)
	s.Load()
	s.Add(movie(42, "Blade Runner"))
	require.NoError(t, storage.Close())

	storage, err = store.New(dir)
	require.NoError(t, err)
	defer storage.Close()

	fresh := NewStore(storage, nil)
	fresh.Load()
	assert.True(t, fresh.IsFavorite(42))
}

// Package favorites maintains the user's favorites set. The set starts
// empty and is populated by an explicit Load; every mutation writes the full
// list back to durable storage in the same call (write-through, not lazy).
package favorites

import (
	"log/slog"
	"sync"

	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/store"
)

// Store owns the favorites set. Entries are full Movie snapshots, not bare
// ids, so favorites stay renderable even if the catalog entry changes or
// disappears.
type Store struct {
	mu     sync.RWMutex
	movies []domain.Movie
	status domain.Status
	errMsg string

	storage domain.StateStore
	logger  *slog.Logger
}

// NewStore creates an empty favorites store. Callers must invoke Load before
// assuming the set reflects durable storage.
func NewStore(storage domain.StateStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		storage: storage,
		logger:  logger,
	}
}

// Load rehydrates the set from durable storage. A missing or corrupt entry
// resolves to an empty set with StatusSuccess: corrupt cache is not a
// user-facing error, and the store already dropped the bad entry.
func (s *Store) Load() {
	s.mu.Lock()
	s.status = domain.StatusLoading
	s.errMsg = ""
	s.mu.Unlock()

	var movies []domain.Movie
	s.storage.Read(store.BucketFavorites, store.KeyFavoritesList, &movies)

	s.mu.Lock()
	s.movies = movies
	s.status = domain.StatusSuccess
	s.mu.Unlock()

	s.logger.Debug("favorites loaded", "count", len(movies))
}

// Add inserts a movie into the set. It is idempotent by movie id: adding a
// movie that is already present changes nothing and performs no write.
func (s *Store) Add(movie domain.Movie) {
	s.mu.Lock()
	for _, m := range s.movies {
		if m.ID == movie.ID {
			s.mu.Unlock()
			return
		}
	}
	s.movies = append(s.movies, movie)
	snapshot := make([]domain.Movie, len(s.movies))
	copy(snapshot, s.movies)
	s.mu.Unlock()

	s.persist(snapshot)
}

// Remove deletes a movie by id. It writes through regardless of whether the
// id was present.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	filtered := s.movies[:0:0]
	for _, m := range s.movies {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	s.movies = filtered
	snapshot := make([]domain.Movie, len(filtered))
	copy(snapshot, filtered)
	s.mu.Unlock()

	s.persist(snapshot)
}

// Clear empties the set and removes the storage entry.
func (s *Store) Clear() {
	s.mu.Lock()
	s.movies = nil
	s.mu.Unlock()

	s.storage.Remove(store.BucketFavorites, store.KeyFavoritesList)
}

// Movies returns a copy of the set in insertion order.
func (s *Store) Movies() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// IsFavorite reports whether the given movie id is in the set.
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.movies {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// Status returns the slice status.
func (s *Store) Status() domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the surfaced error message, if any.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// ClearError dismisses a surfaced error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Store) persist(movies []domain.Movie) {
	if movies == nil {
		movies = []domain.Movie{}
	}
	if err := s.storage.Write(store.BucketFavorites, store.KeyFavoritesList, movies); err != nil {
		s.logger.Warn("failed to persist favorites", "error", err)
		s.mu.Lock()
		s.errMsg = "Failed to save favorites"
		s.mu.Unlock()
	}
}

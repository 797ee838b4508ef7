package domain

import (
	"context"
)

// CatalogRepository provides read-only access to the upstream movie catalog.
// All calls are idempotent; retry policy is the caller's concern.
type CatalogRepository interface {
	// DiscoverMovies returns one page of the filtered listing.
	DiscoverMovies(ctx context.Context, filter Filter, page int) (*Page, error)

	// SearchMovies returns one page of free-text search results.
	SearchMovies(ctx context.Context, query string, page int) (*Page, error)

	// GetGenres returns the catalog's genre list.
	GetGenres(ctx context.Context) ([]Genre, error)

	// GetMovie returns detailed metadata for a specific movie.
	GetMovie(ctx context.Context, id int) (*MovieDetail, error)

	// GetMovieCredits returns the credits subresource for a movie.
	GetMovieCredits(ctx context.Context, id int) (*Credits, error)

	// GetMovieImages returns the images subresource for a movie.
	GetMovieImages(ctx context.Context, id int) (*ImageSet, error)

	// GetSimilarMovies returns one page of movies similar to the given one.
	GetSimilarMovies(ctx context.Context, id int, page int) (*Page, error)

	// GetMovieVideos returns the videos subresource for a movie.
	GetMovieVideos(ctx context.Context, id int) ([]Video, error)
}

// Authenticator verifies credentials and creates accounts. The shipped
// implementation is a mock; a networked credential service satisfies the
// same contract.
type Authenticator interface {
	// Login authenticates with email and password.
	// Returns ErrInvalidCredentials on a mismatch.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Register creates an account and authenticates it in one step.
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
}

// StateStore is the durable local key/value storage used for session and
// favorites persistence. Values are JSON. Reads fail soft: a missing or
// unparseable entry reports false, and corrupt entries are deleted.
type StateStore interface {
	Read(bucket, key string, dest interface{}) bool
	Write(bucket, key string, value interface{}) error
	Remove(bucket, key string)
	Close() error
}

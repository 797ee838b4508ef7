package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrMovieNotFound indicates the requested movie does not exist
	ErrMovieNotFound = errors.New("movie not found")

	// ErrCatalogOffline indicates the catalog API is unreachable
	ErrCatalogOffline = errors.New("catalog is unreachable")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated indicates an operation that requires a session
	ErrNotAuthenticated = errors.New("not authenticated")
)

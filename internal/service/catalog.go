package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/drake/reel/internal/domain"
)

// CatalogService wraps the catalog repository with a process-wide genre
// cache and client-side relevance ranking of search pages.
type CatalogService struct {
	repo   domain.CatalogRepository
	logger *slog.Logger

	genreMu sync.RWMutex
	genres  map[int]string // id -> name, nil until loaded
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.CatalogRepository, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// DiscoverPage returns one page of the filtered listing.
func (s *CatalogService) DiscoverPage(ctx context.Context, filter domain.Filter, page int) (*domain.Page, error) {
	return s.repo.DiscoverMovies(ctx, filter, page)
}

// SearchPage returns one page of search results, re-ranked so that titles
// closest to the query sort first within the page. Pages are re-ranked
// independently; order across pages is the server's.
func (s *CatalogService) SearchPage(ctx context.Context, query string, page int) (*domain.Page, error) {
	result, err := s.repo.SearchMovies(ctx, query, page)
	if err != nil {
		return nil, err
	}
	result.Movies = rankByQuery(result.Movies, query)
	return result, nil
}

// Genres returns the catalog's genre list, fetching it on first use.
func (s *CatalogService) Genres(ctx context.Context) ([]domain.Genre, error) {
	genres, err := s.repo.GetGenres(ctx)
	if err != nil {
		return nil, err
	}

	s.genreMu.Lock()
	s.genres = make(map[int]string, len(genres))
	for _, g := range genres {
		s.genres[g.ID] = g.Name
	}
	s.genreMu.Unlock()

	s.logger.Debug("genres loaded", "count", len(genres))
	return genres, nil
}

// GenreName resolves a genre id against the cached list. It returns ""
// before Genres has succeeded or for an unknown id.
func (s *CatalogService) GenreName(id int) string {
	s.genreMu.RLock()
	defer s.genreMu.RUnlock()
	return s.genres[id]
}

// GenreNames resolves a list of genre ids, skipping unknown ones.
func (s *CatalogService) GenreNames(ids []int) []string {
	s.genreMu.RLock()
	defer s.genreMu.RUnlock()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := s.genres[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Detail returns the full metadata for one movie.
func (s *CatalogService) Detail(ctx context.Context, id int) (*domain.MovieDetail, error) {
	return s.repo.GetMovie(ctx, id)
}

// Credits returns the credits subresource for one movie.
func (s *CatalogService) Credits(ctx context.Context, id int) (*domain.Credits, error) {
	return s.repo.GetMovieCredits(ctx, id)
}

// Images returns the images subresource for one movie.
func (s *CatalogService) Images(ctx context.Context, id int) (*domain.ImageSet, error) {
	return s.repo.GetMovieImages(ctx, id)
}

// Similar returns the first page of movies similar to the given one.
func (s *CatalogService) Similar(ctx context.Context, id int) (*domain.Page, error) {
	return s.repo.GetSimilarMovies(ctx, id, 1)
}

// Videos returns the trailers and teasers for one movie.
func (s *CatalogService) Videos(ctx context.Context, id int) ([]domain.Video, error) {
	return s.repo.GetMovieVideos(ctx, id)
}

// rankByQuery orders movies by how well their title matches the query.
// Lower score = better match.
func rankByQuery(movies []domain.Movie, query string) []domain.Movie {
	if len(movies) < 2 {
		return movies
	}

	query = strings.ToLower(query)

	type rankedMovie struct {
		movie domain.Movie
		score int
	}

	ranked := make([]rankedMovie, 0, len(movies))
	for _, m := range movies {
		ranked = append(ranked, rankedMovie{movie: m, score: matchScore(strings.ToLower(m.Title), query)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	results := make([]domain.Movie, len(ranked))
	for i, r := range ranked {
		results[i] = r.movie
	}
	return results
}

// matchScore calculates a match score for ranking
func matchScore(title, query string) int {
	// Exact match is best
	if title == query {
		return 0
	}

	// Prefix match is very good
	if strings.HasPrefix(title, query) {
		return 10
	}

	// Contains match is good
	if strings.Contains(title, query) {
		return 50
	}

	// Fuzzy distance
	return 100 + fuzzy.LevenshteinDistance(query, title)
}

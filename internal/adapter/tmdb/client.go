package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/drake/reel/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Reel/1.0"

	// PageSize is the catalog's fixed listing page size.
	PageSize = 20

	// MaxResults is the deepest point the catalog will enumerate to,
	// regardless of the reported total (500 pages of 20).
	MaxResults = 10000
)

// Client implements domain.CatalogRepository against a TMDB-compatible API.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client
func NewClient(baseURL, apiKey, language string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET against the catalog API
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	if c.language != "" {
		query.Set("language", c.language)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, domain.ErrCatalogOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, domain.ErrMovieNotFound
	default:
		var status statusDTO
		if json.Unmarshal(body, &status) == nil && status.StatusMessage != "" {
			c.logger.Error("catalog request error", "status", resp.StatusCode, "message", status.StatusMessage)
			return nil, fmt.Errorf("catalog error %d: %s", status.StatusCode, status.StatusMessage)
		}
		c.logger.Error("catalog request error", "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

// DiscoverMovies returns one page of the filtered listing
func (c *Client) DiscoverMovies(ctx context.Context, filter domain.Filter, page int) (*domain.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("sort_by", "popularity.desc")
	if filter.GenreID > 0 {
		query.Set("with_genres", strconv.Itoa(filter.GenreID))
	}
	if gte, lte := filter.Period.Range(); gte != "" || lte != "" {
		if gte != "" {
			query.Set("release_date.gte", gte)
		}
		if lte != "" {
			query.Set("release_date.lte", lte)
		}
	}

	body, err := c.doRequest(ctx, "/discover/movie", query)
	if err != nil {
		return nil, err
	}

	var dto pageDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}
	return mapPage(dto), nil
}

// SearchMovies returns one page of free-text search results
func (c *Client) SearchMovies(ctx context.Context, searchQuery string, page int) (*domain.Page, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, "/search/movie", query)
	if err != nil {
		return nil, err
	}

	var dto pageDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}
	return mapPage(dto), nil
}

// GetGenres returns the catalog's genre list
func (c *Client) GetGenres(ctx context.Context) ([]domain.Genre, error) {
	body, err := c.doRequest(ctx, "/genre/movie/list", nil)
	if err != nil {
		return nil, err
	}

	var dto genreListDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse genre list: %w", err)
	}
	return mapGenres(dto.Genres), nil
}

// GetMovie returns detailed metadata for a specific movie
func (c *Client) GetMovie(ctx context.Context, id int) (*domain.MovieDetail, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var dto detailDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse movie detail: %w", err)
	}
	return mapDetail(dto), nil
}

// GetMovieCredits returns the credits subresource for a movie
func (c *Client) GetMovieCredits(ctx context.Context, id int) (*domain.Credits, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/credits", id), nil)
	if err != nil {
		return nil, err
	}

	var dto creditsDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse credits: %w", err)
	}
	return mapCredits(dto), nil
}

// GetMovieImages returns the images subresource for a movie
func (c *Client) GetMovieImages(ctx context.Context, id int) (*domain.ImageSet, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/images", id), nil)
	if err != nil {
		return nil, err
	}

	var dto imagesDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse images: %w", err)
	}
	return mapImages(dto), nil
}

// GetSimilarMovies returns one page of movies similar to the given one
func (c *Client) GetSimilarMovies(ctx context.Context, id int, page int) (*domain.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/similar", id), query)
	if err != nil {
		return nil, err
	}

	var dto pageDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse similar movies: %w", err)
	}
	return mapPage(dto), nil
}

// GetMovieVideos returns the videos subresource for a movie
func (c *Client) GetMovieVideos(ctx context.Context, id int) ([]domain.Video, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d/videos", id), nil)
	if err != nil {
		return nil, err
	}

	var dto videosDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse videos: %w", err)
	}
	return mapVideos(dto), nil
}

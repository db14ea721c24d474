// Package catalog is a thin client for the TMDB HTTP API: the discover
// endpoint that feeds candidate aggregation plus the per-title
// detail/credits/videos/providers lookups behind the results view.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// StatusError reports a non-2xx response from TMDB. Callers surface it as an
// upstream failure; there is no automatic retry.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb: unexpected status %d: %s", e.Status, e.Body)
}

// DiscoverQuery holds the filter parameters for one discover page.
// Adult content is always excluded.
type DiscoverQuery struct {
	GenreIDs     []int
	Language     string
	Region       string
	SortBy       string
	MinVoteCount int
	MinRating    float64
	Page         int
}

// Client calls the TMDB API. The API key is passed per call because it is
// session-supplied, never configuration.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client. An empty baseURL selects the real API;
// tests point it at an httptest server.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type discoverResponse struct {
	Page       int     `json:"page"`
	Results    []Movie `json:"results"`
	TotalPages int     `json:"total_pages"`
}

// Discover fetches one page of movies matching the query.
func (c *Client) Discover(ctx context.Context, apiKey string, q DiscoverQuery) ([]Movie, error) {
	ids := make([]string, 0, len(q.GenreIDs))
	for _, id := range q.GenreIDs {
		ids = append(ids, strconv.Itoa(id))
	}

	params := url.Values{}
	params.Set("with_genres", strings.Join(ids, ","))
	params.Set("language", q.Language)
	params.Set("region", q.Region)
	params.Set("sort_by", q.SortBy)
	params.Set("include_adult", "false")
	params.Set("vote_count.gte", strconv.Itoa(q.MinVoteCount))
	if q.MinRating > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(q.MinRating, 'f', -1, 64))
	}
	params.Set("page", strconv.Itoa(q.Page))

	var parsed discoverResponse
	if err := c.get(ctx, apiKey, "/discover/movie", params, &parsed); err != nil {
		return nil, err
	}
	return parsed.Results, nil
}

// Details fetches per-title metadata.
func (c *Client) Details(ctx context.Context, apiKey string, movieID int, language string) (MovieDetail, error) {
	params := url.Values{}
	params.Set("language", language)

	var parsed MovieDetail
	if err := c.get(ctx, apiKey, "/movie/"+strconv.Itoa(movieID), params, &parsed); err != nil {
		return MovieDetail{}, err
	}
	return parsed, nil
}

type creditsResponse struct {
	Cast []CastMember `json:"cast"`
}

// Credits fetches the top-billed cast, at most limit entries in billing order.
func (c *Client) Credits(ctx context.Context, apiKey string, movieID int, limit int) ([]CastMember, error) {
	var parsed creditsResponse
	if err := c.get(ctx, apiKey, "/movie/"+strconv.Itoa(movieID)+"/credits", url.Values{}, &parsed); err != nil {
		return nil, err
	}
	cast := parsed.Cast
	if limit > 0 && len(cast) > limit {
		cast = cast[:limit]
	}
	return cast, nil
}

type videosResponse struct {
	Results []Video `json:"results"`
}

// Videos fetches trailer/teaser references for a title.
func (c *Client) Videos(ctx context.Context, apiKey string, movieID int, language string) ([]Video, error) {
	params := url.Values{}
	params.Set("language", language)

	var parsed videosResponse
	if err := c.get(ctx, apiKey, "/movie/"+strconv.Itoa(movieID)+"/videos", params, &parsed); err != nil {
		return nil, err
	}
	return parsed.Results, nil
}

type providersResponse struct {
	Results map[string]ProviderInfo `json:"results"`
}

// WatchProviders fetches the providers available in the given region.
// A title with no providers in the region is a normal empty result.
func (c *Client) WatchProviders(ctx context.Context, apiKey string, movieID int, region string) (ProviderInfo, error) {
	var parsed providersResponse
	if err := c.get(ctx, apiKey, "/movie/"+strconv.Itoa(movieID)+"/watch/providers", url.Values{}, &parsed); err != nil {
		return ProviderInfo{}, err
	}
	return parsed.Results[region], nil
}

func (c *Client) get(ctx context.Context, apiKey, path string, params url.Values, out any) error {
	params.Set("api_key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("tmdb read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tmdb response parse: %w", err)
	}
	return nil
}

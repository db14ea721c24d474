package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedClient is a read-through TTL cache in front of Client. Keys are
// canonical strings of the call parameters only; the API key is excluded
// because TMDB reads are parameter-deterministic, which also makes entries
// safe to share across sessions. Discover pages use the short TTL, per-title
// lookups the long one.
type CachedClient struct {
	client      *Client
	store       *gocache.Cache
	discoverTTL time.Duration
	detailTTL   time.Duration
}

// NewCachedClient wraps client with a TTL cache.
func NewCachedClient(client *Client, discoverTTL, detailTTL time.Duration) *CachedClient {
	return &CachedClient{
		client:      client,
		store:       gocache.New(detailTTL, 10*time.Minute),
		discoverTTL: discoverTTL,
		detailTTL:   detailTTL,
	}
}

// Discover fetches one page of movies, serving repeats from cache.
func (c *CachedClient) Discover(ctx context.Context, apiKey string, q DiscoverQuery) ([]Movie, error) {
	ids := make([]string, 0, len(q.GenreIDs))
	for _, id := range q.GenreIDs {
		ids = append(ids, strconv.Itoa(id))
	}
	key := fmt.Sprintf("discover|%s|%s|%s|%s|%d|%g|%d",
		strings.Join(ids, ","), q.Language, q.Region, q.SortBy, q.MinVoteCount, q.MinRating, q.Page)

	if cached, ok := c.store.Get(key); ok {
		return cached.([]Movie), nil
	}
	movies, err := c.client.Discover(ctx, apiKey, q)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, movies, c.discoverTTL)
	return movies, nil
}

// Details fetches per-title metadata, serving repeats from cache.
func (c *CachedClient) Details(ctx context.Context, apiKey string, movieID int, language string) (MovieDetail, error) {
	key := fmt.Sprintf("details|%d|%s", movieID, language)
	if cached, ok := c.store.Get(key); ok {
		return cached.(MovieDetail), nil
	}
	detail, err := c.client.Details(ctx, apiKey, movieID, language)
	if err != nil {
		return MovieDetail{}, err
	}
	c.store.Set(key, detail, c.detailTTL)
	return detail, nil
}

// Credits fetches the top-billed cast, serving repeats from cache.
func (c *CachedClient) Credits(ctx context.Context, apiKey string, movieID int, limit int) ([]CastMember, error) {
	key := fmt.Sprintf("credits|%d|%d", movieID, limit)
	if cached, ok := c.store.Get(key); ok {
		return cached.([]CastMember), nil
	}
	cast, err := c.client.Credits(ctx, apiKey, movieID, limit)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, cast, c.detailTTL)
	return cast, nil
}

// Videos fetches trailer references, serving repeats from cache.
func (c *CachedClient) Videos(ctx context.Context, apiKey string, movieID int, language string) ([]Video, error) {
	key := fmt.Sprintf("videos|%d|%s", movieID, language)
	if cached, ok := c.store.Get(key); ok {
		return cached.([]Video), nil
	}
	videos, err := c.client.Videos(ctx, apiKey, movieID, language)
	if err != nil {
		return nil, err
	}
	c.store.Set(key, videos, c.detailTTL)
	return videos, nil
}

// WatchProviders fetches regional providers, serving repeats from cache.
func (c *CachedClient) WatchProviders(ctx context.Context, apiKey string, movieID int, region string) (ProviderInfo, error) {
	key := fmt.Sprintf("providers|%d|%s", movieID, region)
	if cached, ok := c.store.Get(key); ok {
		return cached.(ProviderInfo), nil
	}
	info, err := c.client.WatchProviders(ctx, apiKey, movieID, region)
	if err != nil {
		return ProviderInfo{}, err
	}
	c.store.Set(key, info, c.detailTTL)
	return info, nil
}

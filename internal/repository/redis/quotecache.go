package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zenithwellness/zenith/internal/domain"
)

const (
	quoteCachePrefix = "quote:daily:"
)

// QuoteCache stores the quote of the day per language so every user sees the
// same quote until midnight UTC.
type QuoteCache struct {
	client *Client
}

// NewQuoteCache creates a new daily quote cache
func NewQuoteCache(client *Client) *QuoteCache {
	return &QuoteCache{client: client}
}

// Get retrieves the cached quote for a language. A miss returns (nil, nil).
func (c *QuoteCache) Get(ctx context.Context, language string) (*domain.SpiritualQuote, error) {
	key := quoteCachePrefix + language

	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var quote domain.SpiritualQuote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", err)
	}

	return &quote, nil
}

// Set caches the quote for a language until the end of the current UTC day.
func (c *QuoteCache) Set(ctx context.Context, language string, quote *domain.SpiritualQuote) error {
	key := quoteCachePrefix + language

	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	return c.client.rdb.Set(ctx, key, data, untilMidnightUTC(time.Now())).Err()
}

// Invalidate removes the cached quote for a language
func (c *QuoteCache) Invalidate(ctx context.Context, language string) error {
	return c.client.rdb.Del(ctx, quoteCachePrefix+language).Err()
}

func untilMidnightUTC(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	ttl := midnight.Sub(now)
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return ttl
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// listing.go provides a Valkey-backed cache for public listing responses.
// Grouped listings resolve every item's identifier back to a category on
// each render, so the serialized result is cached per content kind and
// invalidated whenever an admin write touches that kind.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"localhub/internal/models"
)

const (
	// listingKeyPrefix is the Valkey key prefix for cached listings.
	listingKeyPrefix = "listing:"

	// DefaultListingTTL is how long a serialized listing stays cached.
	DefaultListingTTL = 5 * time.Minute
)

// ListingCache manages serialized public listings in Valkey.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a new listing cache backed by the given Valkey client.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl == 0 {
		ttl = DefaultListingTTL
	}
	return &ListingCache{client: client, ttl: ttl}
}

// Get retrieves the cached listing for a content kind. Returns false on miss.
func (lc *ListingCache) Get(ctx context.Context, kind models.Kind) ([]byte, bool) {
	val, err := lc.client.Get(ctx, listingKeyPrefix+string(kind)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("listing cache get error", "kind", kind, "error", err)
		return nil, false
	}
	slog.Debug("listing cache hit", "kind", kind)
	return val, true
}

// Set stores a serialized listing for a content kind with the configured TTL.
func (lc *ListingCache) Set(ctx context.Context, kind models.Kind, body []byte) {
	if err := lc.client.Set(ctx, listingKeyPrefix+string(kind), body, lc.ttl).Err(); err != nil {
		slog.Warn("listing cache set error", "kind", kind, "error", err)
	}
}

// Invalidate removes the cached listing for a content kind. Called after any
// admin write (create, update, delete, reorder, visibility change) to that kind.
func (lc *ListingCache) Invalidate(ctx context.Context, kind models.Kind) {
	if err := lc.client.Del(ctx, listingKeyPrefix+string(kind)).Err(); err != nil {
		slog.Warn("listing cache invalidate error", "kind", kind, "error", err)
	}
	slog.Debug("listing cache invalidated", "kind", kind)
}

// InvalidateAll removes every cached listing. Used when the taxonomy itself
// changes, since any kind's grouping could be affected.
func (lc *ListingCache) InvalidateAll(ctx context.Context) {
	for _, kind := range models.Kinds {
		lc.Invalidate(ctx, kind)
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"localhub/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "listing:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestListingCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	lc := NewListingCache(client, 1*time.Minute)

	ctx := context.Background()
	body := []byte(`{"groups":[]}`)

	if _, ok := lc.Get(ctx, models.KindVendor); ok {
		t.Fatal("expected miss before Set")
	}

	lc.Set(ctx, models.KindVendor, body)

	got, ok := lc.Get(ctx, models.KindVendor)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(body) {
		t.Errorf("got %q, want %q", got, body)
	}
}

func TestListingCacheKindsAreIndependent(t *testing.T) {
	client := testValkeyClient(t)
	lc := NewListingCache(client, 1*time.Minute)

	ctx := context.Background()
	lc.Set(ctx, models.KindPage, []byte("pages"))

	if _, ok := lc.Get(ctx, models.KindForum); ok {
		t.Error("one kind's listing leaked into another")
	}
}

func TestListingCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	lc := NewListingCache(client, 1*time.Minute)

	ctx := context.Background()
	lc.Set(ctx, models.KindProduct, []byte("products"))
	lc.Invalidate(ctx, models.KindProduct)

	if _, ok := lc.Get(ctx, models.KindProduct); ok {
		t.Error("expected miss after Invalidate")
	}
}

func TestListingCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	lc := NewListingCache(client, 1*time.Minute)

	ctx := context.Background()
	for _, kind := range models.Kinds {
		lc.Set(ctx, kind, []byte("cached"))
	}

	lc.InvalidateAll(ctx)

	for _, kind := range models.Kinds {
		if _, ok := lc.Get(ctx, kind); ok {
			t.Errorf("kind %s still cached after InvalidateAll", kind)
		}
	}
}

func TestListingCacheZeroTTLUsesDefault(t *testing.T) {
	lc := NewListingCache(nil, 0)
	if lc.ttl != DefaultListingTTL {
		t.Errorf("ttl: got %v, want %v", lc.ttl, DefaultListingTTL)
	}
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_Success(t *testing.T) {
	// Start in-memory Redis
	s := miniredis.RunT(t)
	defer s.Close()

	// Use a non-zero DB to verify it's set
	c, err := OpenRedis(s.Addr(), 2)
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	// Check the client actually works and uses the right DB
	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.Set(ctx, "k", "v", 0).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	v, err := c.Get(ctx, "k").Result()
	if err != nil {
		t.Fatalf("GET err: %v", err)
	}
	if v != "v" {
		t.Fatalf("GET value = %q, want %q", v, "v")
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	// Unresolvable host → Ping should fail immediately (no 5s delay)
	if _, err := OpenRedis("not-a-real-host:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestJSONHelpers_RoundTripMissAndInvalidate(t *testing.T) {
	s := miniredis.RunT(t)
	c, err := OpenRedis(s.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	type payload struct {
		Rate string `json:"rate"`
		Min  int    `json:"min"`
	}

	var got payload
	ok, err := GetJSON(ctx, c, "settings", &got)
	if err != nil || ok {
		t.Fatalf("miss: ok=%v err=%v", ok, err)
	}

	if err := SetJSON(ctx, c, "settings", payload{Rate: "0.01", Min: 6}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if ttl := s.TTL("settings"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}
	ok, err = GetJSON(ctx, c, "settings", &got)
	if err != nil || !ok {
		t.Fatalf("hit: ok=%v err=%v", ok, err)
	}
	if got.Rate != "0.01" || got.Min != 6 {
		t.Fatalf("decoded = %+v", got)
	}

	if err := Invalidate(ctx, c, "settings"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if s.Exists("settings") {
		t.Fatal("key should be gone after Invalidate")
	}
}

func TestGetJSON_CorruptEntryIsMiss(t *testing.T) {
	s := miniredis.RunT(t)
	c, err := OpenRedis(s.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	_ = s.Set("k", "{not json")
	var v map[string]any
	ok, err := GetJSON(context.Background(), c, "k", &v)
	if err != nil || ok {
		t.Fatalf("corrupt: ok=%v err=%v", ok, err)
	}
}

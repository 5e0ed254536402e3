package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/discovery"
)

func TestStatsCacheRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	repo := NewStatsCacheRepo(client)
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, 10); err != nil || ok {
		t.Fatalf("expected miss on empty cache, ok=%v err=%v", ok, err)
	}

	stats := discovery.Stats{
		New:         2,
		Today:       1,
		Mine:        3,
		Near:        4,
		More:        5,
		Total:       15,
		Unviewed:    7,
		MutualLikes: 3,
		LastUpdated: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Set(ctx, 10, stats, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := repo.Get(ctx, 10)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got != stats {
		t.Fatalf("cached stats mismatch: %+v", got)
	}
}

func TestStatsCacheExpires(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	repo := NewStatsCacheRepo(client)
	ctx := context.Background()

	if err := repo.Set(ctx, 10, discovery.Stats{Total: 1}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, ok, err := repo.Get(ctx, 10); err != nil || ok {
		t.Fatalf("expected miss after ttl, ok=%v err=%v", ok, err)
	}
}

func TestStatsCacheTreatsCorruptEntryAsMiss(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	if err := mr.Set(statsKey(10), "{not json"); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}

	repo := NewStatsCacheRepo(client)
	if _, ok, err := repo.Get(context.Background(), 10); err != nil || ok {
		t.Fatalf("expected corrupt entry treated as miss, ok=%v err=%v", ok, err)
	}
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/discovery"
)

// StatsCacheRepo caches per-member discovery stats for a short TTL so
// dashboard polling does not rescan the candidate pool.
type StatsCacheRepo struct {
	client *goredis.Client
}

func NewStatsCacheRepo(client *goredis.Client) *StatsCacheRepo {
	return &StatsCacheRepo{client: client}
}

func statsKey(userID int64) string {
	return fmt.Sprintf("discovery:stats:%d", userID)
}

func (r *StatsCacheRepo) Get(ctx context.Context, userID int64) (discovery.Stats, bool, error) {
	if r.client == nil || userID <= 0 {
		return discovery.Stats{}, false, nil
	}

	raw, err := r.client.Get(ctx, statsKey(userID)).Bytes()
	if err == goredis.Nil {
		return discovery.Stats{}, false, nil
	}
	if err != nil {
		return discovery.Stats{}, false, fmt.Errorf("get cached discovery stats: %w", err)
	}

	var stats discovery.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// A corrupt entry is treated as a miss and overwritten.
		return discovery.Stats{}, false, nil
	}

	return stats, true, nil
}

func (r *StatsCacheRepo) Set(ctx context.Context, userID int64, stats discovery.Stats, ttl time.Duration) error {
	if r.client == nil || userID <= 0 {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal discovery stats: %w", err)
	}

	if err := r.client.Set(ctx, statsKey(userID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache discovery stats: %w", err)
	}

	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// counter cache expiry - 10 minutes
const statsExpireAt = 10 * time.Minute

// StatsStorage is a read-through cache for the denormalized counter rows.
// Writers never update it; they invalidate, and the next reader refills.
type StatsStorage struct {
	redis *redis.Client
}

func NewStatsStorage(rds *redis.Client) *StatsStorage {
	return &StatsStorage{redis: rds}
}

// Get unmarshals the cached counters into out; redis.Nil means a miss.
func (s *StatsStorage) Get(ctx context.Context, kind string, id int64, out any) error {
	val, err := s.redis.Get(ctx, s.name(kind, id)).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), out)
}

func (s *StatsStorage) Set(ctx context.Context, kind string, id int64, stats any) {
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	s.redis.Set(ctx, s.name(kind, id), data, statsExpireAt)
}

func (s *StatsStorage) Del(ctx context.Context, kind string, id int64) {
	s.redis.Del(ctx, s.name(kind, id))
}

// BatchDel drops several entries of one kind in a single pipeline.
func (s *StatsStorage) BatchDel(ctx context.Context, kind string, ids []int64) {
	if len(ids) == 0 {
		return
	}
	pipe := s.redis.Pipeline()
	for _, id := range ids {
		pipe.Del(ctx, s.name(kind, id))
	}
	_, _ = pipe.Exec(ctx)
}

func (s *StatsStorage) name(kind string, id int64) string {
	return fmt.Sprintf("devhub:stats:%s:%d", kind, id)
}

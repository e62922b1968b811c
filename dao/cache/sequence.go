package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupExpireAt = 24 * time.Hour

// Sequence remembers which event ids a consumer already processed, so
// redelivered broker messages are dropped instead of applied twice.
type Sequence struct {
	redis *redis.Client
}

func NewSequence(rds *redis.Client) *Sequence {
	return &Sequence{redis: rds}
}

// TryMarkDone claims an event id for processing. Returns false when some
// other consumer already claimed it.
func (s *Sequence) TryMarkDone(ctx context.Context, group, eventID string) (bool, error) {
	return s.redis.SetNX(ctx, s.doneKey(group, eventID), "1", dedupExpireAt).Result()
}

// UnmarkDone releases a claim after a failed handle so the broker redelivery
// gets another chance.
func (s *Sequence) UnmarkDone(ctx context.Context, group, eventID string) {
	s.redis.Del(ctx, s.doneKey(group, eventID))
}

func (s *Sequence) doneKey(group, eventID string) string {
	return fmt.Sprintf("devhub:done:%s:%s", group, eventID)
}

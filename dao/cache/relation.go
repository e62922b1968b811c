package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// membership cache expiry - 1 hour
const relationExpireAt = time.Hour

// Relation caches positive membership checks so hot community reads skip the
// database. It is only ever a shortcut for "yes"; a miss falls through to MySQL.
type Relation struct {
	redis *redis.Client
}

func NewRelation(rds *redis.Client) *Relation {
	return &Relation{redis: rds}
}

// IsCommunityRelation reports nil when the cache knows the user is a member.
func (r *Relation) IsCommunityRelation(ctx context.Context, uid, communityID int64) error {
	val, err := r.redis.Get(ctx, r.name(uid, communityID)).Result()
	if err != nil {
		return err
	}
	if val != "1" {
		return fmt.Errorf("relation miss")
	}
	return nil
}

func (r *Relation) SetCommunityRelation(ctx context.Context, uid, communityID int64) {
	r.redis.Set(ctx, r.name(uid, communityID), "1", relationExpireAt)
}

// DelCommunityRelation must run on every leave or kick, before the tx commits
// is fine since a stale "yes" only lasts until the delete lands.
func (r *Relation) DelCommunityRelation(ctx context.Context, uid, communityID int64) {
	r.redis.Del(ctx, r.name(uid, communityID))
}

func (r *Relation) name(uid, communityID int64) string {
	return fmt.Sprintf("devhub:relation:community:%d_%d", uid, communityID)
}

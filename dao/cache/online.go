package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// OnlineStorage tracks which websocket clients belong to which user, across
// every server node. sid is the node id, cid the connection id.
type OnlineStorage struct {
	redis *redis.Client
}

func NewOnlineStorage(rds *redis.Client) *OnlineStorage {
	return &OnlineStorage{redis: rds}
}

func (o *OnlineStorage) Bind(ctx context.Context, sid string, cid int64, uid int64) error {
	_, err := o.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, o.clientKey(sid), cid, uid)
		pipe.SAdd(ctx, o.userKey(sid, uid), cid)
		return nil
	})
	return err
}

func (o *OnlineStorage) UnBind(ctx context.Context, sid string, cid int64) error {
	uidStr, err := o.redis.HGet(ctx, o.clientKey(sid), strconv.FormatInt(cid, 10)).Result()
	if err != nil {
		return err
	}

	uid, err := strconv.ParseInt(uidStr, 10, 64)
	if err != nil {
		return err
	}

	_, err = o.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, o.clientKey(sid), strconv.FormatInt(cid, 10))
		pipe.SRem(ctx, o.userKey(sid, uid), cid)
		return nil
	})
	return err
}

func (o *OnlineStorage) IsOnline(ctx context.Context, sid string, uid int64) bool {
	val, err := o.redis.SCard(ctx, o.userKey(sid, uid)).Result()
	return err == nil && val > 0
}

func (o *OnlineStorage) GetClientIDs(ctx context.Context, sid string, uid int64) []int64 {
	cids := make([]int64, 0)

	items, err := o.redis.SMembers(ctx, o.userKey(sid, uid)).Result()
	if err != nil {
		return cids
	}

	for _, item := range items {
		if cid, err := strconv.ParseInt(item, 10, 64); err == nil {
			cids = append(cids, cid)
		}
	}

	return cids
}

func (o *OnlineStorage) clientKey(sid string) string {
	return fmt.Sprintf("ws:%s:client", sid)
}

func (o *OnlineStorage) userKey(sid string, uid int64) string {
	return fmt.Sprintf("ws:%s:user:%d", sid, uid)
}

package socket

import (
	"context"
	"encoding/json"

	"DevHub/pkg/log"
	"DevHub/service"

	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Subscriber relays notification and comment events from redis to connected
// websocket clients. Every node runs one; each only pushes to its own
// connections, so no event reaches a user twice.
type Subscriber struct {
	Redis *redis.Client
	Hub   *Hub
}

func NewSubscriber(rds *redis.Client, hub *Hub) *Subscriber {
	return &Subscriber{Redis: rds, Hub: hub}
}

func (s *Subscriber) Start(ctx context.Context) error {
	sub := s.Redis.Subscribe(ctx, service.NotifyChannel, service.CommentChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if msg.Channel == service.CommentChannel {
				s.fanOutComment(ctx, msg.Payload)
			} else {
				s.fanOut(ctx, msg.Payload)
			}
		}
	}
}

// fanOutComment routes a comment event to every connection watching the
// target. Delivery is once per event id per connection; the hub filters.
func (s *Subscriber) fanOutComment(ctx context.Context, payload string) {
	parsed := gjson.Parse(payload)
	eventID := parsed.Get("event_id").String()
	targetType := parsed.Get("target_type").String()
	if eventID == "" || targetType == "" {
		log.L.Warn("malformed comment payload", zap.String("payload", payload))
		return
	}

	frame := map[string]any{
		"type": "comment_event",
		"data": json.RawMessage(payload),
	}
	key := TargetKey(targetType, parsed.Get("target_id").Int())
	s.Hub.PushToTarget(ctx, key, eventID, frame)
}

func (s *Subscriber) fanOut(ctx context.Context, payload string) {
	parsed := gjson.Parse(payload)
	if !parsed.Get("event_id").Exists() {
		log.L.Warn("malformed notify payload", zap.String("payload", payload))
		return
	}

	frame := map[string]any{
		"type": "notification",
		"data": json.RawMessage(payload),
	}
	for _, uid := range parsed.Get("user_ids").Array() {
		s.Hub.PushToUser(ctx, uid.Int(), frame)
	}
}

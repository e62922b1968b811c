package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"DevHub/config"
	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/models"
	"DevHub/pkg/log"
	"DevHub/pkg/snowflake"
	"DevHub/types"

	rmq_client "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NotifyChannel is the redis pub/sub channel the websocket layer listens on.
const NotifyChannel = "devhub:notify"

// NotifyDedupGroup namespaces the idempotency claims shared between inline
// delivery and the broker consumer.
const NotifyDedupGroup = "notify"

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	NotifyFollow(ctx context.Context, followerID, followeeID int64)
	NotifyComment(ctx context.Context, authorID, ownerID, commentID int64)
	NotifySystem(ctx context.Context, userID int64, title, content string, sourceID int64)
	Announce(ctx context.Context, title, content string) error
	AnnounceCommunity(ctx context.Context, actorID, communityID int64, title, content string) error
	Deliver(ctx context.Context, ev *types.NotifyEvent) error
	List(ctx context.Context, userID int64, cursor *types.CursorQuery) ([]*types.NotificationItem, int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID int64, ids []int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type NotificationService struct {
	Config          *config.Config
	NotificationDAO *dao.NotificationDAO
	UserDAO         *dao.Users
	MemberDAO       *dao.CommunityMemberDAO
	Producer        rmq_client.Producer
	Redis           *redis.Client
	Seq             *cache.Sequence
}

// NotifyFollow tells the followee they gained a follower. Best effort: a
// broker outage must never fail the follow itself.
func (s *NotificationService) NotifyFollow(ctx context.Context, followerID, followeeID int64) {
	follower, err := s.UserDAO.FindByID(ctx, followerID)
	if err != nil || follower == nil {
		return
	}
	s.dispatch(ctx, &types.NotifyEvent{
		Type:     models.NotifyTypeFollow,
		UserIDs:  []int64{followeeID},
		Title:    "New follower",
		Content:  fmt.Sprintf("%s started following you", follower.Username),
		SourceID: followerID,
	})
}

// NotifyComment tells a project or snippet owner about a new comment.
func (s *NotificationService) NotifyComment(ctx context.Context, authorID, ownerID, commentID int64) {
	author, err := s.UserDAO.FindByID(ctx, authorID)
	if err != nil || author == nil {
		return
	}
	s.dispatch(ctx, &types.NotifyEvent{
		Type:     models.NotifyTypeComment,
		UserIDs:  []int64{ownerID},
		Title:    "New comment",
		Content:  fmt.Sprintf("%s commented on your work", author.Username),
		SourceID: commentID,
	})
}

// NotifySystem sends a one-off system message to a single user.
func (s *NotificationService) NotifySystem(ctx context.Context, userID int64, title, content string, sourceID int64) {
	s.dispatch(ctx, &types.NotifyEvent{
		Type:     models.NotifyTypeSystem,
		UserIDs:  []int64{userID},
		Title:    title,
		Content:  content,
		SourceID: sourceID,
	})
}

// Announce fans an announcement out to every active user.
func (s *NotificationService) Announce(ctx context.Context, title, content string) error {
	ids, err := s.UserDAO.AllIDs(ctx)
	if err != nil {
		return err
	}
	s.dispatch(ctx, &types.NotifyEvent{
		Type:    models.NotifyTypeAnnouncement,
		UserIDs: ids,
		Title:   title,
		Content: content,
	})
	return nil
}

// AnnounceCommunity fans an announcement out to every member. Owner only.
func (s *NotificationService) AnnounceCommunity(ctx context.Context, actorID, communityID int64, title, content string) error {
	if !s.MemberDAO.IsOwner(ctx, communityID, actorID) {
		return errors.New("owner role required")
	}

	ids, err := s.MemberDAO.GetMemberIDs(ctx, communityID)
	if err != nil {
		return err
	}
	s.dispatch(ctx, &types.NotifyEvent{
		Type:     models.NotifyTypeAnnouncement,
		UserIDs:  ids,
		Title:    title,
		Content:  content,
		SourceID: communityID,
	})
	return nil
}

// dispatch hands the event to the broker; without one it delivers inline.
func (s *NotificationService) dispatch(ctx context.Context, ev *types.NotifyEvent) {
	ev.EventID = uuid.NewString()

	if s.Producer == nil {
		if err := s.Deliver(ctx, ev); err != nil {
			log.L.Error("deliver notification", zap.Error(err))
		}
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.L.Error("marshal notify event", zap.Error(err))
		return
	}

	msg := &rmq_client.Message{
		Topic: s.Config.RocketMQ.NotifyTopic,
		Body:  body,
	}
	msg.SetKeys(ev.EventID)
	msg.SetTag(ev.Type)

	if _, err := s.Producer.Send(ctx, msg); err != nil {
		log.L.Error("send notify event", zap.String("event_id", ev.EventID), zap.Error(err))
		// the broker may have accepted the message despite the error;
		// claim the event id first so a consumer redelivery gets dropped
		if !s.claimEvent(ctx, ev.EventID) {
			return
		}
		if err := s.Deliver(ctx, ev); err != nil {
			if s.Seq != nil {
				s.Seq.UnmarkDone(ctx, NotifyDedupGroup, ev.EventID)
			}
			log.L.Error("deliver notification", zap.Error(err))
		}
	}
}

// claimEvent reports whether inline delivery should proceed. When redis is
// unreachable the claim fails open, delivery beats deduplication.
func (s *NotificationService) claimEvent(ctx context.Context, eventID string) bool {
	if s.Seq == nil {
		return true
	}
	claimed, err := s.Seq.TryMarkDone(ctx, NotifyDedupGroup, eventID)
	if err != nil {
		return true
	}
	return claimed
}

// Deliver writes the inbox rows and pings the realtime channel. Called inline
// or from the broker worker.
func (s *NotificationService) Deliver(ctx context.Context, ev *types.NotifyEvent) error {
	items := make([]*models.Notification, 0, len(ev.UserIDs))
	now := time.Now()
	for _, uid := range ev.UserIDs {
		items = append(items, &models.Notification{
			ID:        snowflake.GenID(),
			UserID:    uid,
			Type:      ev.Type,
			Title:     ev.Title,
			Content:   ev.Content,
			SourceID:  ev.SourceID,
			CreatedAt: now,
		})
	}

	if err := s.NotificationDAO.BatchCreate(ctx, items); err != nil {
		return err
	}

	if s.Redis != nil {
		payload, err := json.Marshal(ev)
		if err == nil {
			s.Redis.Publish(ctx, NotifyChannel, payload)
		}
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID int64, cursor *types.CursorQuery) ([]*types.NotificationItem, int64, error) {
	cursor.Normalize()
	rows, err := s.NotificationDAO.ListByCursor(ctx, userID, cursor.Cursor, cursor.Limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*types.NotificationItem, 0, len(rows))
	for _, n := range rows {
		items = append(items, &types.NotificationItem{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Content:   n.Content,
			SourceID:  n.SourceID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	var next int64
	if len(rows) > 0 {
		next = rows[len(rows)-1].CreatedAt.UnixNano()
	}
	return items, next, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.NotificationDAO.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID int64, ids []int64) error {
	return s.NotificationDAO.MarkRead(ctx, userID, ids)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.NotificationDAO.MarkAllRead(ctx, userID)
}

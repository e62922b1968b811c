package service

import (
	"context"
	"errors"

	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/models"
	"DevHub/types"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	GetFollowing(ctx context.Context, userID, viewerID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error)
	GetFollowers(ctx context.Context, userID, viewerID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error)
}

type FollowService struct {
	DB         *gorm.DB
	FollowDAO  *dao.UserFollowDAO
	StatsDAO   *dao.UserStatsDAO
	UserDAO    *dao.Users
	StatsCache *cache.StatsStorage
	Notify     INotificationService
}

// Follow creates the follow edge and moves both counters in one transaction.
// Repeats are no-ops: counters only move when the edge actually flips.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return errors.New("cannot follow yourself")
	}

	followee, err := s.UserDAO.FindByID(ctx, followeeID)
	if err != nil {
		return err
	}
	if followee == nil || followee.IsBanned {
		return errors.New("user not found")
	}

	var changed bool
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, err = s.FollowDAO.SetStatus(tx, followerID, followeeID, 1)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := s.StatsDAO.IncrFollowerCount(tx, followeeID, 1); err != nil {
			return err
		}
		return s.StatsDAO.IncrFollowingCount(tx, followerID, 1)
	})
	if err != nil {
		return err
	}

	if changed {
		s.StatsCache.BatchDel(ctx, statsKindUser, []int64{followerID, followeeID})
		s.Notify.NotifyFollow(ctx, followerID, followeeID)
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return errors.New("cannot unfollow yourself")
	}

	var changed bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		changed, err = s.FollowDAO.SetStatus(tx, followerID, followeeID, 0)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := s.StatsDAO.IncrFollowerCount(tx, followeeID, -1); err != nil {
			return err
		}
		return s.StatsDAO.IncrFollowingCount(tx, followerID, -1)
	})
	if err != nil {
		return err
	}

	if changed {
		s.StatsCache.BatchDel(ctx, statsKindUser, []int64{followerID, followeeID})
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

func (s *FollowService) GetFollowing(ctx context.Context, userID, viewerID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error) {
	if limit < 1 || limit > types.MaxPageSize {
		limit = types.DefaultPageSize
	}
	list, err := s.FollowDAO.GetFollowingList(ctx, userID, cursor, limit)
	if err != nil {
		return nil, err
	}
	return s.markMutual(ctx, viewerID, list)
}

func (s *FollowService) GetFollowers(ctx context.Context, userID, viewerID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error) {
	if limit < 1 || limit > types.MaxPageSize {
		limit = types.DefaultPageSize
	}
	list, err := s.FollowDAO.GetFollowerList(ctx, userID, cursor, limit)
	if err != nil {
		return nil, err
	}
	return s.markMutual(ctx, viewerID, list)
}

// markMutual flags entries the viewer follows back.
func (s *FollowService) markMutual(ctx context.Context, viewerID int64, list []*models.FollowingQueryResult) ([]*models.FollowingQueryResult, error) {
	if viewerID == 0 || len(list) == 0 {
		return list, nil
	}

	ids := make([]int64, 0, len(list))
	for _, item := range list {
		ids = append(ids, item.UserID)
	}

	followed, err := s.FollowDAO.BatchCheckFollowing(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range list {
		item.IsMutual = followed[item.UserID]
	}
	return list, nil
}

package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing reports whether an active follow edge exists.
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	exist, err := d.IsExist(ctx, "follower_id = ? AND followee_id = ? AND status = 1", followerID, followeeID)
	if err != nil {
		return false, err
	}
	return exist, nil
}

// SetStatus upserts the edge toward the wanted status and reports whether the
// stored state actually changed. Callers apply counter deltas only on change,
// so duplicate toggles cannot double-count. Runs on the caller's tx.
func (d *UserFollowDAO) SetStatus(tx *gorm.DB, followerID, followeeID int64, status int) (bool, error) {
	now := time.Now()

	res := tx.Model(&models.UserFollow{}).
		Where("follower_id = ? AND followee_id = ? AND status <> ?", followerID, followeeID, status).
		Updates(map[string]any{
			"status":     status,
			"updated_at": now,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// No row flipped: either it is already in the wanted state, or it does
	// not exist at all.
	var count int64
	err := tx.Model(&models.UserFollow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if status == 0 {
		// Clearing an edge that was never created is a no-op.
		return false, nil
	}

	follow := models.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := tx.Create(&follow).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetFollowingList joins users for one page of follows, newest first.
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, userID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error) {
	var follows []*models.FollowingQueryResult

	query := d.Db.WithContext(ctx).
		Table("user_follows uf").
		Select("u.id as user_id, u.username, u.nickname, u.avatar_url, uf.created_at as follow_time").
		Joins("LEFT JOIN users u ON uf.followee_id = u.id").
		Where("uf.follower_id = ? AND uf.status = 1", userID)
	if cursor > 0 {
		query = query.Where("uf.created_at < ?", time.Unix(0, cursor))
	}

	err := query.
		Order("uf.created_at DESC").
		Limit(limit).
		Scan(&follows).Error

	return follows, err
}

// GetFollowerList joins users for one page of followers, newest first.
func (d *UserFollowDAO) GetFollowerList(ctx context.Context, userID int64, cursor int64, limit int) ([]*models.FollowingQueryResult, error) {
	var followers []*models.FollowingQueryResult

	query := d.Db.WithContext(ctx).
		Table("user_follows uf").
		Select("u.id as user_id, u.username, u.nickname, u.avatar_url, uf.created_at as follow_time").
		Joins("LEFT JOIN users u ON uf.follower_id = u.id").
		Where("uf.followee_id = ? AND uf.status = 1", userID)
	if cursor > 0 {
		query = query.Where("uf.created_at < ?", time.Unix(0, cursor))
	}

	err := query.
		Order("uf.created_at DESC").
		Limit(limit).
		Scan(&followers).Error

	return followers, err
}

// GetFollowerIDs returns ids of users actively following userID.
func (d *UserFollowDAO) GetFollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Model(ctx).
		Where("followee_id = ? AND status = 1", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

// BatchCheckFollowing marks which of the given users the viewer follows.
func (d *UserFollowDAO) BatchCheckFollowing(ctx context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(followeeIDs))
	if followerID == 0 || len(followeeIDs) == 0 {
		return result, nil
	}

	var follows []*models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id IN ? AND status = 1", followerID, followeeIDs).
		Find(&follows).Error
	if err != nil {
		return nil, err
	}
	for _, f := range follows {
		result[f.FolloweeID] = true
	}
	return result, nil
}

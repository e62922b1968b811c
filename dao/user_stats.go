package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{
		Repo: NewRepo[models.UserStats](db),
	}
}

// IncrFollowerCount adjusts the follower counter, clamped at zero in SQL so a
// stray decrement can never go negative. Runs on the caller's tx.
func (d *UserStatsDAO) IncrFollowerCount(tx *gorm.DB, userID int64, delta int) error {
	now := time.Now()
	return tx.Exec(`
		INSERT INTO user_stats (user_id, follower_count, created_at, updated_at)
		VALUES (?, GREATEST(?, 0), ?, ?)
		ON DUPLICATE KEY UPDATE
			follower_count = GREATEST(follower_count + ?, 0),
			updated_at = VALUES(updated_at)
	`, userID, delta, now, now, delta).Error
}

// IncrFollowingCount adjusts the following counter, same clamping rules.
func (d *UserStatsDAO) IncrFollowingCount(tx *gorm.DB, userID int64, delta int) error {
	now := time.Now()
	return tx.Exec(`
		INSERT INTO user_stats (user_id, following_count, created_at, updated_at)
		VALUES (?, GREATEST(?, 0), ?, ?)
		ON DUPLICATE KEY UPDATE
			following_count = GREATEST(following_count + ?, 0),
			updated_at = VALUES(updated_at)
	`, userID, delta, now, now, delta).Error
}

// IncrLikeCount tracks total likes received across a user's content.
func (d *UserStatsDAO) IncrLikeCount(tx *gorm.DB, userID int64, delta int) error {
	now := time.Now()
	return tx.Exec(`
		INSERT INTO user_stats (user_id, like_count, created_at, updated_at)
		VALUES (?, GREATEST(?, 0), ?, ?)
		ON DUPLICATE KEY UPDATE
			like_count = GREATEST(like_count + ?, 0),
			updated_at = VALUES(updated_at)
	`, userID, delta, now, now, delta).Error
}

func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	var stats models.UserStats
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.ID == 0 {
		return &models.UserStats{UserID: userID}, nil
	}
	return &stats, nil
}

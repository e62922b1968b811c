package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type CommunityPostDAO struct {
	Repo[models.CommunityPost]
}

func NewCommunityPostDAO(db *gorm.DB) *CommunityPostDAO {
	return &CommunityPostDAO{Repo: NewRepo[models.CommunityPost](db)}
}

func (d *CommunityPostDAO) GetByID(ctx context.Context, postID int64) (*models.CommunityPost, error) {
	return d.FindByWhere(ctx, "id = ? AND status = 1", postID)
}

// ListByCursor pages a community's feed, newest first.
func (d *CommunityPostDAO) ListByCursor(ctx context.Context, communityID int64, cursor int64, limit int) ([]*models.CommunityPost, error) {
	var posts []*models.CommunityPost
	query := d.Db.WithContext(ctx).
		Where("community_id = ? AND status = 1", communityID)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at < ?", cursorTime)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error

	return posts, err
}

func (d *CommunityPostDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.CommunityPost, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var posts []*models.CommunityPost
	err := d.Db.WithContext(ctx).
		Where("id IN ? AND status = 1", ids).
		Find(&posts).Error
	return posts, err
}

func (d *CommunityPostDAO) SoftDelete(tx *gorm.DB, postID int64) error {
	return tx.Model(&models.CommunityPost{}).
		Where("id = ?", postID).
		Update("status", 0).Error
}

func (d *CommunityPostDAO) IncrLikeCount(tx *gorm.DB, postID int64, delta int64) error {
	return tx.Exec(
		"UPDATE community_posts SET like_count = GREATEST(like_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, postID,
	).Error
}

func (d *CommunityPostDAO) IncrCommentCount(tx *gorm.DB, postID int64, delta int64) error {
	return tx.Exec(
		"UPDATE community_posts SET comment_count = GREATEST(comment_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, postID,
	).Error
}

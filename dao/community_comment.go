package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type CommunityCommentDAO struct {
	Repo[models.CommunityComment]
}

func NewCommunityCommentDAO(db *gorm.DB) *CommunityCommentDAO {
	return &CommunityCommentDAO{Repo: NewRepo[models.CommunityComment](db)}
}

func (d *CommunityCommentDAO) GetByID(ctx context.Context, commentID int64) (*models.CommunityComment, error) {
	return d.FindByWhere(ctx, "id = ? AND status = 1", commentID)
}

// ListByCursor pages a post's comments, oldest first.
func (d *CommunityCommentDAO) ListByCursor(ctx context.Context, postID int64, cursor int64, limit int) ([]*models.CommunityComment, error) {
	var comments []*models.CommunityComment
	query := d.Db.WithContext(ctx).
		Where("post_id = ? AND status = 1", postID)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at > ?", cursorTime)
	}

	err := query.
		Order("created_at ASC").
		Limit(limit).
		Find(&comments).Error

	return comments, err
}

func (d *CommunityCommentDAO) SoftDelete(tx *gorm.DB, commentID int64) error {
	return tx.Model(&models.CommunityComment{}).
		Where("id = ?", commentID).
		Update("status", 0).Error
}

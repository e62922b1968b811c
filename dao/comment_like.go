package dao

import (
	"DevHub/models"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type CommentLike struct {
	Repo[models.CommentLike]
}

func NewCommentLike(db *gorm.DB) *CommentLike {
	return &CommentLike{
		Repo: NewRepo[models.CommentLike](db),
	}
}

// Create inserts the like row; the unique key rejects duplicates.
func (d *CommentLike) Create(tx *gorm.DB, like *models.CommentLike) error {
	return tx.Create(like).Error
}

// Delete removes the like row; reports whether a row was actually removed.
func (d *CommentLike) Delete(tx *gorm.DB, commentID, userID int64) (bool, error) {
	res := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *CommentLike) CheckExists(ctx context.Context, commentID, userID int64) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}

// BatchCheckExists marks which comments the viewer has liked.
func (d *CommentLike) BatchCheckExists(ctx context.Context, commentIDs []int64, userID int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(commentIDs) == 0 {
		return result, nil
	}

	var likes []*models.CommentLike
	err := d.Db.WithContext(ctx).
		Where("comment_id IN ? AND user_id = ?", commentIDs, userID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}

	for _, like := range likes {
		result[like.CommentID] = true
	}
	return result, nil
}

package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetRootCommentsByCursor pages top-level comments, newest first.
func (d *Comment) GetRootCommentsByCursor(ctx context.Context, targetType string, targetID int64, cursor int64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	query := d.Db.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND root_id = 0 AND status = 1", targetType, targetID)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at < ?", cursorTime)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error

	return comments, err
}

// GetRepliesByCursor pages replies under a root comment, oldest first.
func (d *Comment) GetRepliesByCursor(ctx context.Context, rootID int64, cursor int64, limit int) ([]*models.Comment, error) {
	var replies []*models.Comment
	query := d.Db.WithContext(ctx).
		Where("root_id = ? AND status = 1", rootID)

	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at > ?", cursorTime)
	}

	err := query.
		Order("created_at ASC").
		Limit(limit).
		Find(&replies).Error

	return replies, err
}

func (d *Comment) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	return d.FindByWhere(ctx, "id = ? AND status = 1", commentID)
}

// SoftDelete hides the comment. Runs on the caller's tx so the counter on the
// target moves in the same commit.
func (d *Comment) SoftDelete(tx *gorm.DB, commentID int64) error {
	return tx.Model(&models.Comment{}).
		Where("id = ?", commentID).
		Update("status", 0).Error
}

// IncrReplyCount adjusts the reply counter on a root comment, clamped at 0.
func (d *Comment) IncrReplyCount(tx *gorm.DB, commentID int64, delta int64) error {
	return tx.Exec(
		"UPDATE comments SET reply_count = GREATEST(reply_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, commentID,
	).Error
}

// IncrLikeCount adjusts the like counter on a comment row, clamped at 0.
func (d *Comment) IncrLikeCount(tx *gorm.DB, commentID int64, delta int64) error {
	return tx.Exec(
		"UPDATE comments SET like_count = GREATEST(like_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, commentID,
	).Error
}

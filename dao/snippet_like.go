package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type SnippetLikeDAO struct {
	Repo[models.SnippetLike]
}

func NewSnippetLikeDAO(db *gorm.DB) *SnippetLikeDAO {
	return &SnippetLikeDAO{Repo: NewRepo[models.SnippetLike](db)}
}

func (d *SnippetLikeDAO) SetStatus(tx *gorm.DB, snippetID, userID int64, status uint8) (bool, error) {
	now := time.Now()

	res := tx.Model(&models.SnippetLike{}).
		Where("snippet_id = ? AND user_id = ? AND status <> ?", snippetID, userID, status).
		Updates(map[string]any{"status": status, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	err := tx.Model(&models.SnippetLike{}).
		Where("snippet_id = ? AND user_id = ?", snippetID, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 || status == 0 {
		return false, nil
	}

	item := models.SnippetLike{SnippetID: snippetID, UserID: userID, Status: status, CreatedAt: now, UpdatedAt: now}
	if err := tx.Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (d *SnippetLikeDAO) IsLiked(ctx context.Context, snippetID, userID int64) (bool, error) {
	return d.IsExist(ctx, "snippet_id = ? AND user_id = ? AND status = 1", snippetID, userID)
}

// BatchCheckLiked marks which snippets the viewer has liked.
func (d *SnippetLikeDAO) BatchCheckLiked(ctx context.Context, snippetIDs []int64, userID int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if userID == 0 || len(snippetIDs) == 0 {
		return result, nil
	}

	var ids []int64
	err := d.Model(ctx).
		Where("snippet_id in ? AND user_id = ? AND status = 1", snippetIDs, userID).
		Pluck("snippet_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type SavedSnippetDAO struct {
	Repo[models.SavedSnippet]
}

func NewSavedSnippetDAO(db *gorm.DB) *SavedSnippetDAO {
	return &SavedSnippetDAO{Repo: NewRepo[models.SavedSnippet](db)}
}

func (d *SavedSnippetDAO) SetStatus(tx *gorm.DB, snippetID, userID int64, status uint8) (bool, error) {
	now := time.Now()

	res := tx.Model(&models.SavedSnippet{}).
		Where("snippet_id = ? AND user_id = ? AND status <> ?", snippetID, userID, status).
		Updates(map[string]any{"status": status, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	err := tx.Model(&models.SavedSnippet{}).
		Where("snippet_id = ? AND user_id = ?", snippetID, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 || status == 0 {
		return false, nil
	}

	item := models.SavedSnippet{SnippetID: snippetID, UserID: userID, Status: status, CreatedAt: now, UpdatedAt: now}
	if err := tx.Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

// BatchCheckSaved marks which snippets the viewer has saved.
func (d *SavedSnippetDAO) BatchCheckSaved(ctx context.Context, snippetIDs []int64, userID int64) (map[int64]bool, error) {
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

func (d *SavedSnippetDAO) IsSaved(ctx context.Context, snippetID, userID int64) (bool, error) {
	return d.IsExist(ctx, "snippet_id = ? AND user_id = ? AND status = 1", snippetID, userID)
}

func (d *SavedSnippetDAO) ListSnippetIDsByUser(ctx context.Context, userID int64, limit, offset int) ([]int64, int64, error) {
	var total int64
	err := d.Model(ctx).Where("user_id = ? AND status = 1", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ids []int64
	err = d.Model(ctx).
		Where("user_id = ? AND status = 1", userID).
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("snippet_id", &ids).Error
	return ids, total, err
}

package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type SavedProjectDAO struct {
	Repo[models.SavedProject]
}

func NewSavedProjectDAO(db *gorm.DB) *SavedProjectDAO {
	return &SavedProjectDAO{Repo: NewRepo[models.SavedProject](db)}
}

func (d *SavedProjectDAO) SetStatus(tx *gorm.DB, projectID, userID int64, status uint8) (bool, error) {
	now := time.Now()

	res := tx.Model(&models.SavedProject{}).
		Where("project_id = ? AND user_id = ? AND status <> ?", projectID, userID, status).
		Updates(map[string]any{"status": status, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	err := tx.Model(&models.SavedProject{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 || status == 0 {
		return false, nil
	}

	item := models.SavedProject{ProjectID: projectID, UserID: userID, Status: status, CreatedAt: now, UpdatedAt: now}
	if err := tx.Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

// BatchCheckSaved marks which projects the viewer has saved.
func (d *SavedProjectDAO) BatchCheckSaved(ctx context.Context, projectIDs []int64, userID int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if userID == 0 || len(projectIDs) == 0 {
		return result, nil
	}

	var ids []int64
	err := d.Model(ctx).
		Where("project_id in ? AND user_id = ? AND status = 1", projectIDs, userID).
		Pluck("project_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

func (d *SavedProjectDAO) IsSaved(ctx context.Context, projectID, userID int64) (bool, error) {
	return d.IsExist(ctx, "project_id = ? AND user_id = ? AND status = 1", projectID, userID)
}

// ListProjectIDsByUser pages the user's saved projects, newest save first.
func (d *SavedProjectDAO) ListProjectIDsByUser(ctx context.Context, userID int64, limit, offset int) ([]int64, int64, error) {
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
		Pluck("project_id", &ids).Error
	return ids, total, err
}

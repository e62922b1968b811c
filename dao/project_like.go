package dao

import (
	"context"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type ProjectLikeDAO struct {
	Repo[models.ProjectLike]
}

func NewProjectLikeDAO(db *gorm.DB) *ProjectLikeDAO {
	return &ProjectLikeDAO{Repo: NewRepo[models.ProjectLike](db)}
}

// SetStatus upserts the like edge; reports whether stored state changed.
func (d *ProjectLikeDAO) SetStatus(tx *gorm.DB, projectID, userID int64, status uint8) (bool, error) {
	now := time.Now()

	res := tx.Model(&models.ProjectLike{}).
		Where("project_id = ? AND user_id = ? AND status <> ?", projectID, userID, status).
		Updates(map[string]any{"status": status, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	err := tx.Model(&models.ProjectLike{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 || status == 0 {
		return false, nil
	}

	item := models.ProjectLike{ProjectID: projectID, UserID: userID, Status: status, CreatedAt: now, UpdatedAt: now}
	if err := tx.Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

// IsLiked reports whether an active like edge exists.
func (d *ProjectLikeDAO) IsLiked(ctx context.Context, projectID, userID int64) (bool, error) {
	return d.IsExist(ctx, "project_id = ? AND user_id = ? AND status = 1", projectID, userID)
}

// BatchCheckLiked marks which projects the viewer has liked.
func (d *ProjectLikeDAO) BatchCheckLiked(ctx context.Context, projectIDs []int64, userID int64) (map[int64]bool, error) {
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

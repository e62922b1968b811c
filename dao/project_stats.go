package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type ProjectStatsDAO struct {
	Repo[models.ProjectStats]
}

func NewProjectStatsDAO(db *gorm.DB) *ProjectStatsDAO {
	return &ProjectStatsDAO{Repo: NewRepo[models.ProjectStats](db)}
}

// IncrLikeCount upserts the like counter, clamped so it never goes negative.
func (d *ProjectStatsDAO) IncrLikeCount(tx *gorm.DB, projectID int64, delta int64) error {
	return tx.Exec(
		"INSERT INTO project_stats (project_id, like_count, created_at, updated_at) VALUES (?, GREATEST(?, 0), NOW(), NOW()) "+
			"ON DUPLICATE KEY UPDATE like_count = GREATEST(like_count + ?, 0), updated_at = NOW()",
		projectID, delta, delta,
	).Error
}

func (d *ProjectStatsDAO) IncrSaveCount(tx *gorm.DB, projectID int64, delta int64) error {
	return tx.Exec(
		"INSERT INTO project_stats (project_id, save_count, created_at, updated_at) VALUES (?, GREATEST(?, 0), NOW(), NOW()) "+
			"ON DUPLICATE KEY UPDATE save_count = GREATEST(save_count + ?, 0), updated_at = NOW()",
		projectID, delta, delta,
	).Error
}

func (d *ProjectStatsDAO) IncrCommentCount(tx *gorm.DB, projectID int64, delta int64) error {
	return tx.Exec(
		"INSERT INTO project_stats (project_id, comment_count, created_at, updated_at) VALUES (?, GREATEST(?, 0), NOW(), NOW()) "+
			"ON DUPLICATE KEY UPDATE comment_count = GREATEST(comment_count + ?, 0), updated_at = NOW()",
		projectID, delta, delta,
	).Error
}

// BatchGetByProjectIDs loads counters keyed by project id; missing rows are
// simply absent from the map.
func (d *ProjectStatsDAO) BatchGetByProjectIDs(ctx context.Context, ids []int64) (map[int64]*models.ProjectStats, error) {
	result := make(map[int64]*models.ProjectStats, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var items []*models.ProjectStats
	err := d.Db.WithContext(ctx).Where("project_id IN ?", ids).Find(&items).Error
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.ProjectID] = item
	}
	return result, nil
}

func (d *ProjectStatsDAO) GetByProjectID(ctx context.Context, projectID int64) (*models.ProjectStats, error) {
	var item models.ProjectStats
	err := d.Db.WithContext(ctx).Where("project_id = ?", projectID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ProjectID == 0 {
		return &models.ProjectStats{ProjectID: projectID}, nil
	}
	return &item, nil
}

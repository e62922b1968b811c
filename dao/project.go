package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type ProjectDAO struct {
	Repo[models.Project]
}

func NewProjectDAO(db *gorm.DB) *ProjectDAO {
	return &ProjectDAO{Repo: NewRepo[models.Project](db)}
}

func (d *ProjectDAO) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return d.FindByWhere(ctx, "id = ? AND status = 1", id)
}

func (d *ProjectDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Project, int64, error) {
	var total int64
	err := d.Model(ctx).Where("user_id = ? AND status = 1", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var projects []*models.Project
	err = d.Db.WithContext(ctx).
		Where("user_id = ? AND status = 1", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error
	return projects, total, err
}

func (d *ProjectDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Project, error) {
	if len(ids) == 0 {
		return []*models.Project{}, nil
	}
	var projects []*models.Project
	err := d.Db.WithContext(ctx).
		Where("id IN ? AND status = 1", ids).
		Find(&projects).Error
	return projects, err
}

func (d *ProjectDAO) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Updates(data).Error
}

// SoftDelete hides the project; edges and stats stay for audit.
func (d *ProjectDAO) SoftDelete(ctx context.Context, id int64) error {
	return d.UpdateById(ctx, id, map[string]any{"status": 0})
}

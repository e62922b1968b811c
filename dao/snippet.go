package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type SnippetDAO struct {
	Repo[models.Snippet]
}

func NewSnippetDAO(db *gorm.DB) *SnippetDAO {
	return &SnippetDAO{Repo: NewRepo[models.Snippet](db)}
}

func (d *SnippetDAO) GetByID(ctx context.Context, id int64) (*models.Snippet, error) {
	return d.FindByWhere(ctx, "id = ? AND status = 1", id)
}

func (d *SnippetDAO) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*models.Snippet, int64, error) {
	var total int64
	err := d.Model(ctx).Where("user_id = ? AND status = 1", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var snippets []*models.Snippet
	err = d.Db.WithContext(ctx).
		Where("user_id = ? AND status = 1", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&snippets).Error
	return snippets, total, err
}

func (d *SnippetDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Snippet, error) {
	if len(ids) == 0 {
		return []*models.Snippet{}, nil
	}
	var snippets []*models.Snippet
	err := d.Db.WithContext(ctx).
		Where("id IN ? AND status = 1", ids).
		Find(&snippets).Error
	return snippets, err
}

func (d *SnippetDAO) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Snippet{}).
		Where("id = ?", id).
		Updates(data).Error
}

func (d *SnippetDAO) SoftDelete(ctx context.Context, id int64) error {
	return d.UpdateById(ctx, id, map[string]any{"status": 0})
}

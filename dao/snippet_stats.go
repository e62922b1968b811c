package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type SnippetStatsDAO struct {
	Repo[models.SnippetStats]
}

func NewSnippetStatsDAO(db *gorm.DB) *SnippetStatsDAO {
	return &SnippetStatsDAO{Repo: NewRepo[models.SnippetStats](db)}
}

func (d *SnippetStatsDAO) IncrLikeCount(tx *gorm.DB, snippetID int64, delta int64) error {
	return tx.Exec(
		"INSERT INTO snippet_stats (snippet_id, like_count, created_at, updated_at) VALUES (?, GREATEST(?, 0), NOW(), NOW()) "+
			"ON DUPLICATE KEY UPDATE like_count = GREATEST(like_count + ?, 0), updated_at = NOW()",
		snippetID, delta, delta,
	).Error
}

func (d *SnippetStatsDAO) IncrSaveCount(tx *gorm.DB, snippetID int64, delta int64) error {
	return tx.Exec(
		"INSERT INTO snippet_stats (snippet_id, save_count, created_at, updated_at) VALUES (?, GREATEST(?, 0), NOW(), NOW()) "+
			"ON DUPLICATE KEY UPDATE save_count = GREATEST(save_count + ?, 0), updated_at = NOW()",
		snippetID, delta, delta,
	).Error
}

func (d *SnippetStatsDAO) IncrCommentCount(tx *gorm.DB, snippetID int64, delta int64) error {
	return tx.Exec(
		"INSERT INTO snippet_stats (snippet_id, comment_count, created_at, updated_at) VALUES (?, GREATEST(?, 0), NOW(), NOW()) "+
			"ON DUPLICATE KEY UPDATE comment_count = GREATEST(comment_count + ?, 0), updated_at = NOW()",
		snippetID, delta, delta,
	).Error
}

func (d *SnippetStatsDAO) BatchGetBySnippetIDs(ctx context.Context, ids []int64) (map[int64]*models.SnippetStats, error) {
	result := make(map[int64]*models.SnippetStats, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var items []*models.SnippetStats
	err := d.Db.WithContext(ctx).Where("snippet_id IN ?", ids).Find(&items).Error
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		result[item.SnippetID] = item
	}
	return result, nil
}

func (d *SnippetStatsDAO) GetBySnippetID(ctx context.Context, snippetID int64) (*models.SnippetStats, error) {
	var item models.SnippetStats
	err := d.Db.WithContext(ctx).Where("snippet_id = ?", snippetID).Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.SnippetID == 0 {
		return &models.SnippetStats{SnippetID: snippetID}, nil
	}
	return &item, nil
}

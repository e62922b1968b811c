package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type CommunityDAO struct {
	Repo[models.Community]
}

func NewCommunityDAO(db *gorm.DB) *CommunityDAO {
	return &CommunityDAO{Repo: NewRepo[models.Community](db)}
}

func (d *CommunityDAO) GetByID(ctx context.Context, id int64) (*models.Community, error) {
	return d.FindByWhere(ctx, "id = ? AND status = 1", id)
}

func (d *CommunityDAO) GetByName(ctx context.Context, name string) (*models.Community, error) {
	return d.FindByWhere(ctx, "name = ? AND status = 1", name)
}

func (d *CommunityDAO) List(ctx context.Context, limit, offset int) ([]*models.Community, int64, error) {
	var total int64
	err := d.Model(ctx).Where("status = 1").Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var communities []*models.Community
	err = d.Db.WithContext(ctx).
		Where("status = 1").
		Order("members_count DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&communities).Error
	return communities, total, err
}

func (d *CommunityDAO) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.Community{}).
		Where("id = ?", id).
		Updates(data).Error
}

// IncrMembersCount adjusts the member counter on the community row, clamped.
func (d *CommunityDAO) IncrMembersCount(tx *gorm.DB, communityID int64, delta int64) error {
	return tx.Exec(
		"UPDATE communities SET members_count = GREATEST(members_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, communityID,
	).Error
}

func (d *CommunityDAO) IncrPostsCount(tx *gorm.DB, communityID int64, delta int64) error {
	return tx.Exec(
		"UPDATE communities SET posts_count = GREATEST(posts_count + ?, 0), updated_at = NOW() WHERE id = ?",
		delta, communityID,
	).Error
}

func (d *CommunityDAO) SoftDelete(tx *gorm.DB, id int64) error {
	return tx.Model(&models.Community{}).
		Where("id = ?", id).
		Update("status", 0).Error
}

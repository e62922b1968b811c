package dao

import (
	"context"

	"DevHub/models"

	"gorm.io/gorm"
)

type BlogPostDAO struct {
	Repo[models.BlogPost]
}

func NewBlogPostDAO(db *gorm.DB) *BlogPostDAO {
	return &BlogPostDAO{Repo: NewRepo[models.BlogPost](db)}
}

func (d *BlogPostDAO) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return d.FindByWhere(ctx, "slug = ? AND published = 1", slug)
}

func (d *BlogPostDAO) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return d.FindByWhere(ctx, "id = ?", id)
}

func (d *BlogPostDAO) IsSlugExist(ctx context.Context, slug string) (bool, error) {
	return d.IsExist(ctx, "slug = ?", slug)
}

// ListPublished pages published posts for the public blog, newest first.
func (d *BlogPostDAO) ListPublished(ctx context.Context, limit, offset int) ([]*models.BlogPost, int64, error) {
	var total int64
	err := d.Model(ctx).Where("published = 1").Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var posts []*models.BlogPost
	err = d.Db.WithContext(ctx).
		Where("published = 1").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// ListAll includes drafts, for the admin view.
func (d *BlogPostDAO) ListAll(ctx context.Context, limit, offset int) ([]*models.BlogPost, int64, error) {
	var total int64
	err := d.Model(ctx).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var posts []*models.BlogPost
	err = d.Db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

func (d *BlogPostDAO) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", id).
		Updates(data).Error
}

func (d *BlogPostDAO) Delete(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.BlogPost{}).Error
}

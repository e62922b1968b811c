package dao

import (
	"context"
	"fmt"
	"time"

	"DevHub/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

func (u *Users) FindByID(ctx context.Context, id int64) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "id = ?", id)
}

// IsEmailExist reports whether the email is already registered.
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

func (u *Users) UpdateById(ctx context.Context, id int64, data map[string]any) error {
	if id <= 0 {
		return gorm.ErrRecordNotFound
	}
	err := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", id).
		Updates(data).Error
	if err != nil {
		return fmt.Errorf("dao.Users.UpdateById error: %w", err)
	}
	return nil
}

// SetBanned flips the moderation flag; banned users fail the auth middleware.
func (u *Users) SetBanned(ctx context.Context, id int64, banned bool) error {
	return u.UpdateById(ctx, id, map[string]any{"is_banned": banned})
}

// BatchGetByIDs loads users keyed by id for list assembly.
func (u *Users) BatchGetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Users, error) {
	result := make(map[int64]*models.Users, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var users []*models.Users
	err := u.Db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, usr := range users {
		result[usr.ID] = usr
	}
	return result, nil
}

// ExpiredProIDs finds PRO users whose access window has closed. Keyed on the
// user row's own expiry, which each approval overwrites, so a lapsed older
// subscription cannot demote a user who renewed since.
func (u *Users) ExpiredProIDs(ctx context.Context, now time.Time) ([]int64, error) {
	var ids []int64
	err := u.Model(ctx).
		Where("is_pro = 1 AND pro_expires_at IS NOT NULL AND pro_expires_at <= ?", now).
		Pluck("id", &ids).Error
	return ids, err
}

// AllIDs returns every non-banned user id, used by announcement fan-out.
func (u *Users) AllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := u.Model(ctx).Where("is_banned = 0").Pluck("id", &ids).Error
	return ids, err
}

package dao

import (
	"context"
	"time"

	"DevHub/dao/cache"
	"DevHub/models"

	"gorm.io/gorm"
)

type CommunityMemberDAO struct {
	Repo[models.CommunityMember]
	relation *cache.Relation
}

func NewCommunityMemberDAO(db *gorm.DB, relation *cache.Relation) *CommunityMemberDAO {
	return &CommunityMemberDAO{Repo: NewRepo[models.CommunityMember](db), relation: relation}
}

// IsOwner reports whether the user holds the owner role. Role is the single
// authority here; communities.creator_id is informational only.
func (d *CommunityMemberDAO) IsOwner(ctx context.Context, communityID, userID int64) bool {
	exist, err := d.Repo.IsExist(ctx, "community_id = ? AND user_id = ? AND role = ? AND status = 1", communityID, userID, models.MemberRoleOwner)
	return err == nil && exist
}

// IsModerator reports whether the user is owner or moderator.
func (d *CommunityMemberDAO) IsModerator(ctx context.Context, communityID, userID int64) bool {
	exist, err := d.Repo.IsExist(ctx, "community_id = ? AND user_id = ? AND role IN ? AND status = 1",
		communityID, userID, []int{models.MemberRoleOwner, models.MemberRoleModerator})
	return err == nil && exist
}

// IsMember checks active membership, consulting the relation cache first when
// useCache is set.
func (d *CommunityMemberDAO) IsMember(ctx context.Context, communityID, userID int64, useCache bool) bool {
	if useCache && d.relation.IsCommunityRelation(ctx, userID, communityID) == nil {
		return true
	}

	exist, err := d.Repo.IsExist(ctx, "community_id = ? AND user_id = ? AND status = 1", communityID, userID)
	if err != nil {
		return false
	}

	if exist {
		d.relation.SetCommunityRelation(ctx, userID, communityID)
	}

	return exist
}

func (d *CommunityMemberDAO) FindByUserID(ctx context.Context, communityID, userID int64) (*models.CommunityMember, error) {
	return d.FindByWhere(ctx, "community_id = ? AND user_id = ?", communityID, userID)
}

// GetRole returns the member's role, or 0 when not an active member.
func (d *CommunityMemberDAO) GetRole(ctx context.Context, communityID, userID int64) (int, error) {
	var role int
	err := d.Model(ctx).
		Select("role").
		Where("community_id = ? AND user_id = ? AND status = 1", communityID, userID).
		Scan(&role).Error
	return role, err
}

// SetStatus flips the membership edge, reporting whether anything changed.
// A fresh join row gets the given role; rejoin keeps the stored role column
// untouched apart from resetting it to plain member.
func (d *CommunityMemberDAO) SetStatus(tx *gorm.DB, communityID, userID int64, status int, role int) (bool, error) {
	now := time.Now()

	res := tx.Model(&models.CommunityMember{}).
		Where("community_id = ? AND user_id = ? AND status <> ?", communityID, userID, status).
		Updates(map[string]any{"status": status, "role": role, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	err := tx.Model(&models.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 || status == 0 {
		return false, nil
	}

	item := models.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
		Role:        role,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := tx.Create(&item).Error; err != nil {
		return false, err
	}
	return true, nil
}

// SetRole promotes or demotes an active member.
func (d *CommunityMemberDAO) SetRole(tx *gorm.DB, communityID, userID int64, role int) error {
	return tx.Model(&models.CommunityMember{}).
		Where("community_id = ? AND user_id = ? AND status = 1", communityID, userID).
		Update("role", role).Error
}

// GetMemberIDs returns the user ids of all active members.
func (d *CommunityMemberDAO) GetMemberIDs(ctx context.Context, communityID int64) ([]int64, error) {
	var ids []int64
	err := d.Model(ctx).
		Where("community_id = ? AND status = 1", communityID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetUserCommunityIDs returns the communities a user belongs to.
func (d *CommunityMemberDAO) GetUserCommunityIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Model(ctx).
		Where("user_id = ? AND status = 1", userID).
		Pluck("community_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetMembers lists active members joined with their profile row, owner first.
func (d *CommunityMemberDAO) GetMembers(ctx context.Context, communityID int64) []*models.MemberItem {
	fields := []string{
		"community_members.id",
		"community_members.user_id",
		"community_members.role",
		"users.username",
		"users.nickname",
		"users.avatar_url",
	}

	tx := d.Db.WithContext(ctx).Table("community_members")
	tx.Joins("left join users on users.id = community_members.user_id")
	tx.Where("community_members.community_id = ? and community_members.status = 1", communityID)
	tx.Order("community_members.role asc")

	var items []*models.MemberItem
	tx.Select(fields).Scan(&items)

	return items
}

type CountCommunityMember struct {
	CommunityID int64 `gorm:"column:community_id;"`
	Count       int   `gorm:"column:count;"`
}

// CountMembersByCommunity counts active members per community in one query.
func (d *CommunityMemberDAO) CountMembersByCommunity(ctx context.Context, ids []int64) ([]*CountCommunityMember, error) {
	var items []*CountCommunityMember
	err := d.Model(ctx).
		Select("community_id, count(*) as count").
		Where("community_id in ? and status = 1", ids).
		Group("community_id").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// BatchCheckMembership marks which of the given communities the user is in.
func (d *CommunityMemberDAO) BatchCheckMembership(ctx context.Context, communityIDs []int64, userID int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(communityIDs) == 0 {
		return result, nil
	}

	var ids []int64
	err := d.Model(ctx).
		Where("community_id in ? AND user_id = ? AND status = 1", communityIDs, userID).
		Pluck("community_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}

// InvalidateRelation drops the cached membership after a leave or kick.
func (d *CommunityMemberDAO) InvalidateRelation(ctx context.Context, communityID, userID int64) {
	d.relation.DelCommunityRelation(ctx, userID, communityID)
}

package service

import (
	"context"
	"errors"
	"time"

	"DevHub/dao"
	"DevHub/models"
	"DevHub/pkg/snowflake"
	"DevHub/pkg/utils"
	"DevHub/types"

	"gorm.io/gorm"
)

const communityInviteSalt = "devhub-community-invite"

var _ ICommunityService = (*CommunityService)(nil)

type ICommunityService interface {
	Create(ctx context.Context, userID int64, req *types.CreateCommunityRequest) (*types.CommunityItem, error)
	Get(ctx context.Context, communityID, viewerID int64) (*types.CommunityItem, error)
	List(ctx context.Context, viewerID int64, page *types.PageQuery) ([]*types.CommunityItem, int64, error)
	Update(ctx context.Context, userID, communityID int64, req *types.UpdateCommunityRequest) error
	Delete(ctx context.Context, userID, communityID int64) error
	InviteCode(ctx context.Context, userID, communityID int64) (string, error)
	ResolveInvite(ctx context.Context, code string) (int64, error)
}

type CommunityService struct {
	DB           *gorm.DB
	CommunityDAO *dao.CommunityDAO
	MemberDAO    *dao.CommunityMemberDAO
}

// Create inserts the community and its owner membership in one transaction,
// so the role gate has an owner row from the first moment.
func (s *CommunityService) Create(ctx context.Context, userID int64, req *types.CreateCommunityRequest) (*types.CommunityItem, error) {
	existing, err := s.CommunityDAO.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("community name already taken")
	}

	community := &models.Community{
		ID:           snowflake.GenID(),
		Name:         req.Name,
		Description:  req.Description,
		AvatarURL:    req.AvatarURL,
		BannerURL:    req.BannerURL,
		CreatorID:    userID,
		MembersCount: 1,
		Status:       1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(community).Error; err != nil {
			return err
		}
		owner := &models.CommunityMember{
			CommunityID: community.ID,
			UserID:      userID,
			Role:        models.MemberRoleOwner,
			Status:      1,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		return tx.Create(owner).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, community.ID, userID)
}

func (s *CommunityService) Get(ctx context.Context, communityID, viewerID int64) (*types.CommunityItem, error) {
	community, err := s.CommunityDAO.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, errors.New("community not found")
	}

	item := buildCommunityItem(community)
	if viewerID > 0 {
		role, err := s.MemberDAO.GetRole(ctx, communityID, viewerID)
		if err == nil && role > 0 {
			item.IsJoined = true
			item.Role = role
		}
	}
	return item, nil
}

func (s *CommunityService) List(ctx context.Context, viewerID int64, page *types.PageQuery) ([]*types.CommunityItem, int64, error) {
	page.Normalize()
	communities, total, err := s.CommunityDAO.List(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0, len(communities))
	for _, c := range communities {
		ids = append(ids, c.ID)
	}

	joined := map[int64]bool{}
	if viewerID > 0 {
		joined, err = s.MemberDAO.BatchCheckMembership(ctx, ids, viewerID)
		if err != nil {
			return nil, 0, err
		}
	}

	items := make([]*types.CommunityItem, 0, len(communities))
	for _, c := range communities {
		item := buildCommunityItem(c)
		item.IsJoined = joined[c.ID]
		items = append(items, item)
	}
	return items, total, nil
}

// Update requires moderator rights; the role row is the only authority.
func (s *CommunityService) Update(ctx context.Context, userID, communityID int64, req *types.UpdateCommunityRequest) error {
	community, err := s.CommunityDAO.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if community == nil {
		return errors.New("community not found")
	}
	if !s.MemberDAO.IsModerator(ctx, communityID, userID) {
		return errors.New("moderator role required")
	}

	data := map[string]any{}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.AvatarURL != nil {
		data["avatar_url"] = *req.AvatarURL
	}
	if req.BannerURL != nil {
		data["banner_url"] = *req.BannerURL
	}
	if len(data) == 0 {
		return nil
	}
	return s.CommunityDAO.UpdateById(ctx, communityID, data)
}

// Delete requires the owner role.
func (s *CommunityService) Delete(ctx context.Context, userID, communityID int64) error {
	community, err := s.CommunityDAO.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if community == nil {
		return errors.New("community not found")
	}
	if !s.MemberDAO.IsOwner(ctx, communityID, userID) {
		return errors.New("owner role required")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CommunityDAO.SoftDelete(tx, communityID)
	})
}

// InviteCode hands an active member an opaque token that resolves back to
// the community. The token is stable, revoking it is not supported.
func (s *CommunityService) InviteCode(ctx context.Context, userID, communityID int64) (string, error) {
	community, err := s.CommunityDAO.GetByID(ctx, communityID)
	if err != nil {
		return "", err
	}
	if community == nil {
		return "", errors.New("community not found")
	}
	if !s.MemberDAO.IsMember(ctx, communityID, userID, true) {
		return "", errors.New("membership required")
	}

	return utils.GenHashID(communityInviteSalt, communityID), nil
}

// ResolveInvite maps an invite token back to its community id.
func (s *CommunityService) ResolveInvite(ctx context.Context, code string) (int64, error) {
	id := utils.ParseHashID(communityInviteSalt, code)
	if id == 0 {
		return 0, errors.New("invalid invite code")
	}

	community, err := s.CommunityDAO.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if community == nil {
		return 0, errors.New("community not found")
	}
	return id, nil
}

func buildCommunityItem(c *models.Community) *types.CommunityItem {
	return &types.CommunityItem{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		AvatarURL:    c.AvatarURL,
		BannerURL:    c.BannerURL,
		MembersCount: c.MembersCount,
		PostsCount:   c.PostsCount,
		CreatedAt:    c.CreatedAt,
	}
}

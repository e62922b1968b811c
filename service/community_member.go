package service

import (
	"context"
	"errors"

	"DevHub/dao"
	"DevHub/models"

	"gorm.io/gorm"
)

var _ ICommunityMemberService = (*CommunityMemberService)(nil)

type ICommunityMemberService interface {
	Join(ctx context.Context, userID, communityID int64) error
	Leave(ctx context.Context, userID, communityID int64) error
	Kick(ctx context.Context, actorID, communityID, targetID int64) error
	SetRole(ctx context.Context, actorID, communityID, targetID int64, role int) error
	Transfer(ctx context.Context, actorID, communityID, targetID int64) error
	GetMembers(ctx context.Context, communityID int64) []*models.MemberItem
}

type CommunityMemberService struct {
	DB           *gorm.DB
	CommunityDAO *dao.CommunityDAO
	MemberDAO    *dao.CommunityMemberDAO
}

// Join flips the membership edge and the member counter in one transaction.
// Joining twice is a no-op.
func (s *CommunityMemberService) Join(ctx context.Context, userID, communityID int64) error {
	community, err := s.CommunityDAO.GetByID(ctx, communityID)
	if err != nil {
		return err
	}
	if community == nil {
		return errors.New("community not found")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, err := s.MemberDAO.SetStatus(tx, communityID, userID, 1, models.MemberRoleMember)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.CommunityDAO.IncrMembersCount(tx, communityID, 1)
	})
}

// Leave refuses the owner; ownership must move before the owner can go.
func (s *CommunityMemberService) Leave(ctx context.Context, userID, communityID int64) error {
	if s.MemberDAO.IsOwner(ctx, communityID, userID) {
		return errors.New("owner cannot leave the community")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, err := s.MemberDAO.SetStatus(tx, communityID, userID, 0, models.MemberRoleMember)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.CommunityDAO.IncrMembersCount(tx, communityID, -1)
	})
	if err != nil {
		return err
	}

	s.MemberDAO.InvalidateRelation(ctx, communityID, userID)
	return nil
}

// Kick removes a member. The actor needs moderator rights and must outrank
// the target; nobody kicks the owner.
func (s *CommunityMemberService) Kick(ctx context.Context, actorID, communityID, targetID int64) error {
	if actorID == targetID {
		return errors.New("cannot kick yourself")
	}
	if !s.MemberDAO.IsModerator(ctx, communityID, actorID) {
		return errors.New("moderator role required")
	}

	actorRole, err := s.MemberDAO.GetRole(ctx, communityID, actorID)
	if err != nil {
		return err
	}
	targetRole, err := s.MemberDAO.GetRole(ctx, communityID, targetID)
	if err != nil {
		return err
	}
	if targetRole == 0 {
		return errors.New("not a community member")
	}
	if targetRole <= actorRole {
		return errors.New("cannot kick a member of equal or higher role")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, err := s.MemberDAO.SetStatus(tx, communityID, targetID, 0, models.MemberRoleMember)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.CommunityDAO.IncrMembersCount(tx, communityID, -1)
	})
	if err != nil {
		return err
	}

	s.MemberDAO.InvalidateRelation(ctx, communityID, targetID)
	return nil
}

// SetRole promotes or demotes between moderator and member. Owner only.
func (s *CommunityMemberService) SetRole(ctx context.Context, actorID, communityID, targetID int64, role int) error {
	if role != models.MemberRoleModerator && role != models.MemberRoleMember {
		return errors.New("invalid role")
	}
	if !s.MemberDAO.IsOwner(ctx, communityID, actorID) {
		return errors.New("owner role required")
	}
	if actorID == targetID {
		return errors.New("cannot change your own role")
	}

	targetRole, err := s.MemberDAO.GetRole(ctx, communityID, targetID)
	if err != nil {
		return err
	}
	if targetRole == 0 {
		return errors.New("not a community member")
	}

	return s.MemberDAO.SetRole(s.DB.WithContext(ctx), communityID, targetID, role)
}

// Transfer moves the owner role to another active member. The old owner
// stays on as a moderator. Both role writes commit together, so the
// community never has zero or two owners.
func (s *CommunityMemberService) Transfer(ctx context.Context, actorID, communityID, targetID int64) error {
	if actorID == targetID {
		return errors.New("already the owner")
	}
	if !s.MemberDAO.IsOwner(ctx, communityID, actorID) {
		return errors.New("owner role required")
	}

	targetRole, err := s.MemberDAO.GetRole(ctx, communityID, targetID)
	if err != nil {
		return err
	}
	if targetRole == 0 {
		return errors.New("not a community member")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.MemberDAO.SetRole(tx, communityID, targetID, models.MemberRoleOwner); err != nil {
			return err
		}
		return s.MemberDAO.SetRole(tx, communityID, actorID, models.MemberRoleModerator)
	})
}

func (s *CommunityMemberService) GetMembers(ctx context.Context, communityID int64) []*models.MemberItem {
	return s.MemberDAO.GetMembers(ctx, communityID)
}

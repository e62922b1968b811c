package service

import (
	"context"
	"errors"

	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/models"
	"DevHub/types"
)

const statsKindUser = "user"

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID, viewerID int64) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error
	SetBanned(ctx context.Context, userID int64, banned bool) error
	Summaries(ctx context.Context, ids []int64) (map[int64]types.UserSummary, error)
}

type UserService struct {
	UsersRepo  *dao.Users
	StatsDAO   *dao.UserStatsDAO
	FollowDAO  *dao.UserFollowDAO
	StatsCache *cache.StatsStorage
}

// GetProfile assembles the profile page: user row, counters and the viewer's
// follow edge. Counters come through the cache; a miss refills it from MySQL.
func (s *UserService) GetProfile(ctx context.Context, userID, viewerID int64) (*types.UserProfile, error) {
	user, err := s.UsersRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	// Any cache error, miss or outage, degrades to a DB read.
	var stats models.UserStats
	if err := s.StatsCache.Get(ctx, statsKindUser, userID, &stats); err != nil {
		fresh, err := s.StatsDAO.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		stats = *fresh
		s.StatsCache.Set(ctx, statsKindUser, userID, fresh)
	}

	profile := &types.UserProfile{
		ID:             user.ID,
		Username:       user.Username,
		Nickname:       user.Nickname,
		Bio:            user.Bio,
		AvatarURL:      user.AvatarURL,
		BannerURL:      user.BannerURL,
		Website:        user.Website,
		GithubURL:      user.GithubURL,
		IsPro:          user.IsPro,
		ProExpiresAt:   user.ProExpiresAt,
		FollowerCount:  int64(stats.FollowerCount),
		FollowingCount: int64(stats.FollowingCount),
		LikeCount:      int64(stats.LikeCount),
		CreatedAt:      user.CreatedAt,
	}

	if viewerID == userID {
		profile.IsSelf = true
		profile.Email = user.Email
	} else if viewerID > 0 {
		following, err := s.FollowDAO.IsFollowing(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = following
	}

	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error {
	data := map[string]any{}
	if req.Nickname != nil {
		data["nickname"] = *req.Nickname
	}
	if req.Bio != nil {
		data["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		data["avatar_url"] = *req.AvatarURL
	}
	if req.BannerURL != nil {
		data["banner_url"] = *req.BannerURL
	}
	if req.Website != nil {
		data["website"] = *req.Website
	}
	if req.GithubURL != nil {
		data["github_url"] = *req.GithubURL
	}
	if len(data) == 0 {
		return nil
	}
	return s.UsersRepo.UpdateById(ctx, userID, data)
}

func (s *UserService) SetBanned(ctx context.Context, userID int64, banned bool) error {
	return s.UsersRepo.SetBanned(ctx, userID, banned)
}

// Summaries loads the author blocks for a batch of user ids.
func (s *UserService) Summaries(ctx context.Context, ids []int64) (map[int64]types.UserSummary, error) {
	users, err := s.UsersRepo.BatchGetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]types.UserSummary, len(users))
	for id, u := range users {
		result[id] = types.UserSummary{
			ID:        u.ID,
			Username:  u.Username,
			Nickname:  u.Nickname,
			AvatarURL: u.AvatarURL,
			IsPro:     u.IsPro,
		}
	}
	return result, nil
}

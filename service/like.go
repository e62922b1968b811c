package service

import (
	"context"
	"errors"

	"DevHub/dao"
	"DevHub/dao/cache"

	"gorm.io/gorm"
)

const (
	statsKindProject = "project"
	statsKindSnippet = "snippet"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	LikeProject(ctx context.Context, userID, projectID int64) error
	UnlikeProject(ctx context.Context, userID, projectID int64) error
	LikeSnippet(ctx context.Context, userID, snippetID int64) error
	UnlikeSnippet(ctx context.Context, userID, snippetID int64) error
	IsProjectLiked(ctx context.Context, userID, projectID int64) (bool, error)
	IsSnippetLiked(ctx context.Context, userID, snippetID int64) (bool, error)
}

type LikeService struct {
	DB              *gorm.DB
	ProjectDAO      *dao.ProjectDAO
	SnippetDAO      *dao.SnippetDAO
	ProjectLikeDAO  *dao.ProjectLikeDAO
	SnippetLikeDAO  *dao.SnippetLikeDAO
	ProjectStatsDAO *dao.ProjectStatsDAO
	SnippetStatsDAO *dao.SnippetStatsDAO
	UserStatsDAO    *dao.UserStatsDAO
	StatsCache      *cache.StatsStorage
}

// LikeProject flips the like edge and moves the project counter plus the
// author's received-likes counter in one transaction. Liking twice is a no-op.
func (s *LikeService) LikeProject(ctx context.Context, userID, projectID int64) error {
	return s.toggleProject(ctx, userID, projectID, 1)
}

func (s *LikeService) UnlikeProject(ctx context.Context, userID, projectID int64) error {
	return s.toggleProject(ctx, userID, projectID, 0)
}

func (s *LikeService) LikeSnippet(ctx context.Context, userID, snippetID int64) error {
	return s.toggleSnippet(ctx, userID, snippetID, 1)
}

func (s *LikeService) UnlikeSnippet(ctx context.Context, userID, snippetID int64) error {
	return s.toggleSnippet(ctx, userID, snippetID, 0)
}

func (s *LikeService) IsProjectLiked(ctx context.Context, userID, projectID int64) (bool, error) {
	return s.ProjectLikeDAO.IsLiked(ctx, projectID, userID)
}

func (s *LikeService) IsSnippetLiked(ctx context.Context, userID, snippetID int64) (bool, error) {
	return s.SnippetLikeDAO.IsLiked(ctx, snippetID, userID)
}

func (s *LikeService) toggleProject(ctx context.Context, userID, projectID int64, status uint8) error {
	project, err := s.ProjectDAO.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return errors.New("project not found")
	}

	delta := int64(1)
	if status == 0 {
		delta = -1
	}

	var changed bool
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		changed, err = s.ProjectLikeDAO.SetStatus(tx, projectID, userID, status)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := s.ProjectStatsDAO.IncrLikeCount(tx, projectID, delta); err != nil {
			return err
		}
		return s.UserStatsDAO.IncrLikeCount(tx, project.UserID, int(delta))
	})
	if err != nil {
		return err
	}

	if changed {
		s.StatsCache.Del(ctx, statsKindProject, projectID)
		s.StatsCache.Del(ctx, statsKindUser, project.UserID)
	}
	return nil
}

func (s *LikeService) toggleSnippet(ctx context.Context, userID, snippetID int64, status uint8) error {
	snippet, err := s.SnippetDAO.GetByID(ctx, snippetID)
	if err != nil {
		return err
	}
	if snippet == nil {
		return errors.New("snippet not found")
	}

	delta := int64(1)
	if status == 0 {
		delta = -1
	}

	var changed bool
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		changed, err = s.SnippetLikeDAO.SetStatus(tx, snippetID, userID, status)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if err := s.SnippetStatsDAO.IncrLikeCount(tx, snippetID, delta); err != nil {
			return err
		}
		return s.UserStatsDAO.IncrLikeCount(tx, snippet.UserID, int(delta))
	})
	if err != nil {
		return err
	}

	if changed {
		s.StatsCache.Del(ctx, statsKindSnippet, snippetID)
		s.StatsCache.Del(ctx, statsKindUser, snippet.UserID)
	}
	return nil
}

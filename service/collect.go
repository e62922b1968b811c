package service

import (
	"context"
	"errors"

	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/types"

	"gorm.io/gorm"
)

var _ ICollectService = (*CollectService)(nil)

type ICollectService interface {
	SaveProject(ctx context.Context, userID, projectID int64) error
	UnsaveProject(ctx context.Context, userID, projectID int64) error
	SaveSnippet(ctx context.Context, userID, snippetID int64) error
	UnsaveSnippet(ctx context.Context, userID, snippetID int64) error
	ListSavedProjects(ctx context.Context, userID int64, page *types.PageQuery) ([]*types.ProjectItem, int64, error)
	ListSavedSnippets(ctx context.Context, userID int64, page *types.PageQuery) ([]*types.SnippetItem, int64, error)
}

type CollectService struct {
	DB              *gorm.DB
	ProjectDAO      *dao.ProjectDAO
	SnippetDAO      *dao.SnippetDAO
	SavedProjectDAO *dao.SavedProjectDAO
	SavedSnippetDAO *dao.SavedSnippetDAO
	ProjectStatsDAO *dao.ProjectStatsDAO
	SnippetStatsDAO *dao.SnippetStatsDAO
	StatsCache      *cache.StatsStorage
	ProjectService  IProjectService
	SnippetService  ISnippetService
}

func (s *CollectService) SaveProject(ctx context.Context, userID, projectID int64) error {
	return s.toggleProject(ctx, userID, projectID, 1)
}

func (s *CollectService) UnsaveProject(ctx context.Context, userID, projectID int64) error {
	return s.toggleProject(ctx, userID, projectID, 0)
}

func (s *CollectService) SaveSnippet(ctx context.Context, userID, snippetID int64) error {
	return s.toggleSnippet(ctx, userID, snippetID, 1)
}

func (s *CollectService) UnsaveSnippet(ctx context.Context, userID, snippetID int64) error {
	return s.toggleSnippet(ctx, userID, snippetID, 0)
}

// ListSavedProjects resolves the saved ids and hands them to the project
// assembler, keeping the saved order.
func (s *CollectService) ListSavedProjects(ctx context.Context, userID int64, page *types.PageQuery) ([]*types.ProjectItem, int64, error) {
	page.Normalize()
	ids, total, err := s.SavedProjectDAO.ListProjectIDsByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	projects, err := s.ProjectDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.ProjectService.Assemble(ctx, projects, userID)
	if err != nil {
		return nil, 0, err
	}

	return sortByIDOrder(ids, items, func(it *types.ProjectItem) int64 { return it.ID }), total, nil
}

func (s *CollectService) ListSavedSnippets(ctx context.Context, userID int64, page *types.PageQuery) ([]*types.SnippetItem, int64, error) {
	page.Normalize()
	ids, total, err := s.SavedSnippetDAO.ListSnippetIDsByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	snippets, err := s.SnippetDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.SnippetService.Assemble(ctx, snippets, userID)
	if err != nil {
		return nil, 0, err
	}

	return sortByIDOrder(ids, items, func(it *types.SnippetItem) int64 { return it.ID }), total, nil
}

func (s *CollectService) toggleProject(ctx context.Context, userID, projectID int64, status uint8) error {
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
		changed, err = s.SavedProjectDAO.SetStatus(tx, projectID, userID, status)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.ProjectStatsDAO.IncrSaveCount(tx, projectID, delta)
	})
	if err != nil {
		return err
	}

	if changed {
		s.StatsCache.Del(ctx, statsKindProject, projectID)
	}
	return nil
}

func (s *CollectService) toggleSnippet(ctx context.Context, userID, snippetID int64, status uint8) error {
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
		changed, err = s.SavedSnippetDAO.SetStatus(tx, snippetID, userID, status)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.SnippetStatsDAO.IncrSaveCount(tx, snippetID, delta)
	})
	if err != nil {
		return err
	}

	if changed {
		s.StatsCache.Del(ctx, statsKindSnippet, snippetID)
	}
	return nil
}

// sortByIDOrder reorders assembled items to match the id list.
func sortByIDOrder[T any](ids []int64, items []T, idOf func(T) int64) []T {
	byID := make(map[int64]T, len(items))
	for _, item := range items {
		byID[idOf(item)] = item
	}
	out := make([]T, 0, len(items))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

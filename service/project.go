package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/models"
	"DevHub/pkg/snowflake"
	"DevHub/types"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/datatypes"
)

var _ IProjectService = (*ProjectService)(nil)

type IProjectService interface {
	Create(ctx context.Context, userID int64, req *types.CreateProjectRequest) (*types.ProjectItem, error)
	Get(ctx context.Context, projectID, viewerID int64) (*types.ProjectItem, error)
	ListByUser(ctx context.Context, userID, viewerID int64, page *types.PageQuery) ([]*types.ProjectItem, int64, error)
	Update(ctx context.Context, userID, projectID int64, req *types.UpdateProjectRequest) error
	Delete(ctx context.Context, userID int64, role string, projectID int64) error
	Assemble(ctx context.Context, projects []*models.Project, viewerID int64) ([]*types.ProjectItem, error)
}

type ProjectService struct {
	ProjectDAO  *dao.ProjectDAO
	StatsDAO    *dao.ProjectStatsDAO
	LikeDAO     *dao.ProjectLikeDAO
	SavedDAO    *dao.SavedProjectDAO
	UserService IUserService
	StatsCache  *cache.StatsStorage
}

func (s *ProjectService) Create(ctx context.Context, userID int64, req *types.CreateProjectRequest) (*types.ProjectItem, error) {
	project := &models.Project{
		ID:          snowflake.GenID(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		DemoURL:     req.DemoURL,
		ImageURL:    req.ImageURL,
		Tags:        encodeTags(req.Tags),
		Status:      1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.ProjectDAO.Create(ctx, project); err != nil {
		return nil, err
	}

	return s.Get(ctx, project.ID, userID)
}

// Get assembles one project detail with cached counters and viewer flags.
func (s *ProjectService) Get(ctx context.Context, projectID, viewerID int64) (*types.ProjectItem, error) {
	project, err := s.ProjectDAO.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.New("project not found")
	}

	var (
		stats  models.ProjectStats
		author types.UserSummary
		liked  bool
		saved  bool
	)

	// counters, author and viewer flags come from independent tables
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		if err := s.StatsCache.Get(ctx, statsKindProject, projectID, &stats); err == nil {
			return nil
		}
		fresh, err := s.StatsDAO.GetByProjectID(ctx, projectID)
		if err != nil {
			return err
		}
		stats = *fresh
		s.StatsCache.Set(ctx, statsKindProject, projectID, fresh)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		authors, err := s.UserService.Summaries(ctx, []int64{project.UserID})
		if err != nil {
			return err
		}
		author = authors[project.UserID]
		return nil
	})
	if viewerID > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			liked, err = s.LikeDAO.IsLiked(ctx, projectID, viewerID)
			return err
		})
		p.Go(func(ctx context.Context) error {
			var err error
			saved, err = s.SavedDAO.IsSaved(ctx, projectID, viewerID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	item := buildProjectItem(project, &stats, author)
	item.IsLiked = liked
	item.IsSaved = saved
	return item, nil
}

func (s *ProjectService) ListByUser(ctx context.Context, userID, viewerID int64, page *types.PageQuery) ([]*types.ProjectItem, int64, error) {
	page.Normalize()
	projects, total, err := s.ProjectDAO.ListByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	items, err := s.Assemble(ctx, projects, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, projectID int64, req *types.UpdateProjectRequest) error {
	project, err := s.ProjectDAO.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return errors.New("project not found")
	}
	if project.UserID != userID {
		return errors.New("not the project owner")
	}

	data := map[string]any{}
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.RepoURL != nil {
		data["repo_url"] = *req.RepoURL
	}
	if req.DemoURL != nil {
		data["demo_url"] = *req.DemoURL
	}
	if req.ImageURL != nil {
		data["image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		data["tags"] = encodeTags(req.Tags)
	}
	if len(data) == 0 {
		return nil
	}
	return s.ProjectDAO.UpdateById(ctx, projectID, data)
}

// Delete hides the project. Admins may remove any project.
func (s *ProjectService) Delete(ctx context.Context, userID int64, role string, projectID int64) error {
	project, err := s.ProjectDAO.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return errors.New("project not found")
	}
	if project.UserID != userID && role != models.UserRoleAdmin {
		return errors.New("not the project owner")
	}

	if err := s.ProjectDAO.SoftDelete(ctx, projectID); err != nil {
		return err
	}
	s.StatsCache.Del(ctx, statsKindProject, projectID)
	return nil
}

// Assemble builds list items in three batched lookups: counters, authors and
// the viewer's like/save edges.
func (s *ProjectService) Assemble(ctx context.Context, projects []*models.Project, viewerID int64) ([]*types.ProjectItem, error) {
	if len(projects) == 0 {
		return []*types.ProjectItem{}, nil
	}

	ids := make([]int64, 0, len(projects))
	authorIDs := make([]int64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
		authorIDs = append(authorIDs, p.UserID)
	}

	statsMap, err := s.StatsDAO.BatchGetByProjectIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	authors, err := s.UserService.Summaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.LikeDAO.BatchCheckLiked(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}
	saved, err := s.SavedDAO.BatchCheckSaved(ctx, ids, viewerID)
	if err != nil {
		return nil, err
	}

	items := make([]*types.ProjectItem, 0, len(projects))
	for _, p := range projects {
		stats := statsMap[p.ID]
		if stats == nil {
			stats = &models.ProjectStats{ProjectID: p.ID}
		}
		item := buildProjectItem(p, stats, authors[p.UserID])
		item.IsLiked = liked[p.ID]
		item.IsSaved = saved[p.ID]
		items = append(items, item)
	}
	return items, nil
}

func buildProjectItem(p *models.Project, stats *models.ProjectStats, author types.UserSummary) *types.ProjectItem {
	return &types.ProjectItem{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		RepoURL:      p.RepoURL,
		DemoURL:      p.DemoURL,
		ImageURL:     p.ImageURL,
		Tags:         decodeTags(p.Tags),
		Author:       author,
		LikeCount:    stats.LikeCount,
		SaveCount:    stats.SaveCount,
		CommentCount: stats.CommentCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func encodeTags(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		return datatypes.JSON("[]")
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

func decodeTags(data datatypes.JSON) []string {
	tags := []string{}
	if len(data) == 0 {
		return tags
	}
	_ = json.Unmarshal(data, &tags)
	return tags
}

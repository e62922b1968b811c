package service

import (
	"context"
	"errors"
	"time"

	"DevHub/dao"
	"DevHub/dao/cache"
	"DevHub/models"
	"DevHub/pkg/llm"
	"DevHub/pkg/snowflake"
	"DevHub/pkg/utils"
	"DevHub/types"

	"github.com/sourcegraph/conc/pool"
)

const snippetShareSalt = "devhub-snippet-share"

var _ ISnippetService = (*SnippetService)(nil)

type ISnippetService interface {
	Create(ctx context.Context, userID int64, req *types.CreateSnippetRequest) (*types.SnippetItem, error)
	Get(ctx context.Context, snippetID, viewerID int64) (*types.SnippetItem, error)
	GetByShareID(ctx context.Context, shareID string, viewerID int64) (*types.SnippetItem, error)
	ListByUser(ctx context.Context, userID, viewerID int64, page *types.PageQuery) ([]*types.SnippetItem, int64, error)
	Update(ctx context.Context, userID, snippetID int64, req *types.UpdateSnippetRequest) error
	Delete(ctx context.Context, userID int64, role string, snippetID int64) error
	Assemble(ctx context.Context, snippets []*models.Snippet, viewerID int64) ([]*types.SnippetItem, error)
}

type SnippetService struct {
	SnippetDAO  *dao.SnippetDAO
	StatsDAO    *dao.SnippetStatsDAO
	LikeDAO     *dao.SnippetLikeDAO
	SavedDAO    *dao.SavedSnippetDAO
	UserService IUserService
	StatsCache  *cache.StatsStorage
}

// Create stores the snippet. When the author sends no tags, a model suggests
// some from the code; failures there never block the create.
func (s *SnippetService) Create(ctx context.Context, userID int64, req *types.CreateSnippetRequest) (*types.SnippetItem, error) {
	tags := req.Tags
	if len(tags) == 0 {
		tags = llm.GenSnippetTags(ctx, req.Title, req.Language, req.Code)
	}

	snippet := &models.Snippet{
		ID:          snowflake.GenID(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Language:    req.Language,
		Code:        req.Code,
		Tags:        encodeTags(tags),
		Status:      1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.SnippetDAO.Create(ctx, snippet); err != nil {
		return nil, err
	}

	return s.Get(ctx, snippet.ID, userID)
}

func (s *SnippetService) Get(ctx context.Context, snippetID, viewerID int64) (*types.SnippetItem, error) {
	snippet, err := s.SnippetDAO.GetByID(ctx, snippetID)
	if err != nil {
		return nil, err
	}
	if snippet == nil {
		return nil, errors.New("snippet not found")
	}

	var (
		stats  models.SnippetStats
		author types.UserSummary
		liked  bool
		saved  bool
	)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		if err := s.StatsCache.Get(ctx, statsKindSnippet, snippetID, &stats); err == nil {
			return nil
		}
		fresh, err := s.StatsDAO.GetBySnippetID(ctx, snippetID)
		if err != nil {
			return err
		}
		stats = *fresh
		s.StatsCache.Set(ctx, statsKindSnippet, snippetID, fresh)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		authors, err := s.UserService.Summaries(ctx, []int64{snippet.UserID})
		if err != nil {
			return err
		}
		author = authors[snippet.UserID]
		return nil
	})
	if viewerID > 0 {
		p.Go(func(ctx context.Context) error {
			var err error
			liked, err = s.LikeDAO.IsLiked(ctx, snippetID, viewerID)
			return err
		})
		p.Go(func(ctx context.Context) error {
			var err error
			saved, err = s.SavedDAO.IsSaved(ctx, snippetID, viewerID)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	item := buildSnippetItem(snippet, &stats, author)
	item.IsLiked = liked
	item.IsSaved = saved
	return item, nil
}

// GetByShareID resolves the opaque share token used in public links.
func (s *SnippetService) GetByShareID(ctx context.Context, shareID string, viewerID int64) (*types.SnippetItem, error) {
	id := utils.ParseHashID(snippetShareSalt, shareID)
	if id == 0 {
		return nil, errors.New("snippet not found")
	}
	return s.Get(ctx, id, viewerID)
}

func (s *SnippetService) ListByUser(ctx context.Context, userID, viewerID int64, page *types.PageQuery) ([]*types.SnippetItem, int64, error) {
	page.Normalize()
	snippets, total, err := s.SnippetDAO.ListByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	items, err := s.Assemble(ctx, snippets, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SnippetService) Update(ctx context.Context, userID, snippetID int64, req *types.UpdateSnippetRequest) error {
	snippet, err := s.SnippetDAO.GetByID(ctx, snippetID)
	if err != nil {
		return err
	}
	if snippet == nil {
		return errors.New("snippet not found")
	}
	if snippet.UserID != userID {
		return errors.New("not the snippet owner")
	}

	data := map[string]any{}
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.Language != nil {
		data["language"] = *req.Language
	}
	if req.Code != nil {
		data["code"] = *req.Code
	}
	if req.Tags != nil {
		data["tags"] = encodeTags(req.Tags)
	}
	if len(data) == 0 {
		return nil
	}
	return s.SnippetDAO.UpdateById(ctx, snippetID, data)
}

func (s *SnippetService) Delete(ctx context.Context, userID int64, role string, snippetID int64) error {
	snippet, err := s.SnippetDAO.GetByID(ctx, snippetID)
	if err != nil {
		return err
	}
	if snippet == nil {
		return errors.New("snippet not found")
	}
	if snippet.UserID != userID && role != models.UserRoleAdmin {
		return errors.New("not the snippet owner")
	}

	if err := s.SnippetDAO.SoftDelete(ctx, snippetID); err != nil {
		return err
	}
	s.StatsCache.Del(ctx, statsKindSnippet, snippetID)
	return nil
}

func (s *SnippetService) Assemble(ctx context.Context, snippets []*models.Snippet, viewerID int64) ([]*types.SnippetItem, error) {
	if len(snippets) == 0 {
		return []*types.SnippetItem{}, nil
	}

	ids := make([]int64, 0, len(snippets))
	authorIDs := make([]int64, 0, len(snippets))
	for _, sn := range snippets {
		ids = append(ids, sn.ID)
		authorIDs = append(authorIDs, sn.UserID)
	}

	statsMap, err := s.StatsDAO.BatchGetBySnippetIDs(ctx, ids)
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

	items := make([]*types.SnippetItem, 0, len(snippets))
	for _, sn := range snippets {
		stats := statsMap[sn.ID]
		if stats == nil {
			stats = &models.SnippetStats{SnippetID: sn.ID}
		}
		item := buildSnippetItem(sn, stats, authors[sn.UserID])
		item.IsLiked = liked[sn.ID]
		item.IsSaved = saved[sn.ID]
		items = append(items, item)
	}
	return items, nil
}

func buildSnippetItem(sn *models.Snippet, stats *models.SnippetStats, author types.UserSummary) *types.SnippetItem {
	return &types.SnippetItem{
		ID:           sn.ID,
		Title:        sn.Title,
		Description:  sn.Description,
		Language:     sn.Language,
		Code:         sn.Code,
		Tags:         decodeTags(sn.Tags),
		ShareID:      utils.GenHashID(snippetShareSalt, sn.ID),
		Author:       author,
		LikeCount:    stats.LikeCount,
		SaveCount:    stats.SaveCount,
		CommentCount: stats.CommentCount,
		CreatedAt:    sn.CreatedAt,
		UpdatedAt:    sn.UpdatedAt,
	}
}

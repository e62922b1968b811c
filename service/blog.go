package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"DevHub/dao"
	"DevHub/models"
	"DevHub/pkg/snowflake"
	"DevHub/types"
)

var _ IBlogService = (*BlogService)(nil)

type IBlogService interface {
	Create(ctx context.Context, authorID int64, req *types.CreateBlogPostRequest) (*types.BlogPostItem, error)
	Update(ctx context.Context, postID int64, req *types.UpdateBlogPostRequest) error
	Delete(ctx context.Context, postID int64) error
	GetBySlug(ctx context.Context, slug string) (*types.BlogPostItem, error)
	ListPublished(ctx context.Context, page *types.PageQuery) ([]*types.BlogPostItem, int64, error)
	ListAll(ctx context.Context, page *types.PageQuery) ([]*types.BlogPostItem, int64, error)
}

type BlogService struct {
	BlogDAO *dao.BlogPostDAO
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func (s *BlogService) Create(ctx context.Context, authorID int64, req *types.CreateBlogPostRequest) (*types.BlogPostItem, error) {
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}
	exists, err := s.BlogDAO.IsSlugExist(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("slug already in use")
	}

	post := &models.BlogPost{
		ID:        snowflake.GenID(),
		AuthorID:  authorID,
		Title:     req.Title,
		Slug:      slug,
		Content:   req.Content,
		Published: req.Published,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.BlogDAO.Create(ctx, post); err != nil {
		return nil, err
	}
	return buildBlogItem(post, true), nil
}

func (s *BlogService) Update(ctx context.Context, postID int64, req *types.UpdateBlogPostRequest) error {
	post, err := s.BlogDAO.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New("blog post not found")
	}

	data := map[string]any{}
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Content != nil {
		data["content"] = *req.Content
	}
	if req.Published != nil {
		data["published"] = *req.Published
	}
	if len(data) == 0 {
		return nil
	}
	return s.BlogDAO.UpdateById(ctx, postID, data)
}

func (s *BlogService) Delete(ctx context.Context, postID int64) error {
	return s.BlogDAO.Delete(ctx, postID)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*types.BlogPostItem, error) {
	post, err := s.BlogDAO.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("blog post not found")
	}
	return buildBlogItem(post, true), nil
}

func (s *BlogService) ListPublished(ctx context.Context, page *types.PageQuery) ([]*types.BlogPostItem, int64, error) {
	page.Normalize()
	posts, total, err := s.BlogDAO.ListPublished(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return buildBlogItems(posts), total, nil
}

func (s *BlogService) ListAll(ctx context.Context, page *types.PageQuery) ([]*types.BlogPostItem, int64, error) {
	page.Normalize()
	posts, total, err := s.BlogDAO.ListAll(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return buildBlogItems(posts), total, nil
}

// slugify lowercases the title and collapses everything else to hyphens.
func slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func buildBlogItems(posts []*models.BlogPost) []*types.BlogPostItem {
	items := make([]*types.BlogPostItem, 0, len(posts))
	for _, p := range posts {
		// list view skips the body
		items = append(items, buildBlogItem(p, false))
	}
	return items
}

func buildBlogItem(p *models.BlogPost, withContent bool) *types.BlogPostItem {
	item := &types.BlogPostItem{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if withContent {
		item.Content = p.Content
	}
	return item
}

package service

import (
	"context"
	"errors"
	"time"

	"DevHub/dao"
	"DevHub/models"
	"DevHub/pkg/snowflake"
	"DevHub/types"

	"gorm.io/gorm"
)

var _ ICommunityPostService = (*CommunityPostService)(nil)

type ICommunityPostService interface {
	CreatePost(ctx context.Context, userID, communityID int64, req *types.CreatePostRequest) (*types.PostItem, error)
	GetPost(ctx context.Context, postID, viewerID int64) (*types.PostItem, error)
	ListPosts(ctx context.Context, communityID, viewerID int64, cursor *types.CursorQuery) ([]*types.PostItem, int64, error)
	DeletePost(ctx context.Context, userID, postID int64) error
	LikePost(ctx context.Context, userID, postID int64) error
	UnlikePost(ctx context.Context, userID, postID int64) error
	CreateComment(ctx context.Context, userID, postID int64, req *types.CreatePostCommentRequest) (*types.PostCommentItem, error)
	ListComments(ctx context.Context, postID int64, cursor *types.CursorQuery) ([]*types.PostCommentItem, int64, error)
	DeleteComment(ctx context.Context, userID, commentID int64) error
}

type CommunityPostService struct {
	DB           *gorm.DB
	CommunityDAO *dao.CommunityDAO
	MemberDAO    *dao.CommunityMemberDAO
	PostDAO      *dao.CommunityPostDAO
	PostLikeDAO  *dao.PostLikeDAO
	CommentDAO   *dao.CommunityCommentDAO
	UserService  IUserService
	Notify       INotificationService
}

// CreatePost requires active membership and bumps the community post counter
// in the same transaction as the insert.
func (s *CommunityPostService) CreatePost(ctx context.Context, userID, communityID int64, req *types.CreatePostRequest) (*types.PostItem, error) {
	community, err := s.CommunityDAO.GetByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, errors.New("community not found")
	}
	if !s.MemberDAO.IsMember(ctx, communityID, userID, true) {
		return nil, errors.New("join the community first")
	}

	post := &models.CommunityPost{
		ID:          snowflake.GenID(),
		CommunityID: communityID,
		UserID:      userID,
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Status:      1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return s.CommunityDAO.IncrPostsCount(tx, communityID, 1)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPost(ctx, post.ID, userID)
}

func (s *CommunityPostService) GetPost(ctx context.Context, postID, viewerID int64) (*types.PostItem, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post not found")
	}

	items, err := s.assemblePosts(ctx, []*models.CommunityPost{post}, viewerID)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *CommunityPostService) ListPosts(ctx context.Context, communityID, viewerID int64, cursor *types.CursorQuery) ([]*types.PostItem, int64, error) {
	cursor.Normalize()
	posts, err := s.PostDAO.ListByCursor(ctx, communityID, cursor.Cursor, cursor.Limit)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.assemblePosts(ctx, posts, viewerID)
	if err != nil {
		return nil, 0, err
	}

	var next int64
	if len(posts) > 0 {
		next = posts[len(posts)-1].CreatedAt.UnixNano()
	}
	return items, next, nil
}

// DeletePost allows the author or a community moderator.
func (s *CommunityPostService) DeletePost(ctx context.Context, userID, postID int64) error {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New("post not found")
	}
	if post.UserID != userID && !s.MemberDAO.IsModerator(ctx, post.CommunityID, userID) {
		return errors.New("not allowed to delete this post")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.PostDAO.SoftDelete(tx, postID); err != nil {
			return err
		}
		return s.CommunityDAO.IncrPostsCount(tx, post.CommunityID, -1)
	})
}

func (s *CommunityPostService) LikePost(ctx context.Context, userID, postID int64) error {
	return s.togglePostLike(ctx, userID, postID, 1)
}

func (s *CommunityPostService) UnlikePost(ctx context.Context, userID, postID int64) error {
	return s.togglePostLike(ctx, userID, postID, 0)
}

// CreateComment requires membership in the post's community.
func (s *CommunityPostService) CreateComment(ctx context.Context, userID, postID int64, req *types.CreatePostCommentRequest) (*types.PostCommentItem, error) {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post not found")
	}
	if !s.MemberDAO.IsMember(ctx, post.CommunityID, userID, true) {
		return nil, errors.New("join the community first")
	}

	comment := &models.CommunityComment{
		ID:        snowflake.GenID(),
		PostID:    postID,
		UserID:    userID,
		Content:   req.Content,
		Status:    1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return s.PostDAO.IncrCommentCount(tx, postID, 1)
	})
	if err != nil {
		return nil, err
	}

	if post.UserID != userID {
		s.Notify.NotifyComment(ctx, userID, post.UserID, comment.ID)
	}

	authors, err := s.UserService.Summaries(ctx, []int64{userID})
	if err != nil {
		return nil, err
	}
	return &types.PostCommentItem{
		ID:        comment.ID,
		PostID:    postID,
		Content:   comment.Content,
		Author:    authors[userID],
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *CommunityPostService) ListComments(ctx context.Context, postID int64, cursor *types.CursorQuery) ([]*types.PostCommentItem, int64, error) {
	cursor.Normalize()
	comments, err := s.CommentDAO.ListByCursor(ctx, postID, cursor.Cursor, cursor.Limit)
	if err != nil {
		return nil, 0, err
	}

	authorIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.UserID)
	}
	authors, err := s.UserService.Summaries(ctx, authorIDs)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*types.PostCommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, &types.PostCommentItem{
			ID:        c.ID,
			PostID:    c.PostID,
			Content:   c.Content,
			Author:    authors[c.UserID],
			CreatedAt: c.CreatedAt,
		})
	}

	var next int64
	if len(comments) > 0 {
		next = comments[len(comments)-1].CreatedAt.UnixNano()
	}
	return items, next, nil
}

func (s *CommunityPostService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New("comment not found")
	}

	post, err := s.PostDAO.GetByID(ctx, comment.PostID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New("post not found")
	}
	if comment.UserID != userID && !s.MemberDAO.IsModerator(ctx, post.CommunityID, userID) {
		return errors.New("not allowed to delete this comment")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.CommentDAO.SoftDelete(tx, commentID); err != nil {
			return err
		}
		return s.PostDAO.IncrCommentCount(tx, comment.PostID, -1)
	})
}

func (s *CommunityPostService) togglePostLike(ctx context.Context, userID, postID int64, status uint8) error {
	post, err := s.PostDAO.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return errors.New("post not found")
	}
	if !s.MemberDAO.IsMember(ctx, post.CommunityID, userID, true) {
		return errors.New("join the community first")
	}

	delta := int64(1)
	if status == 0 {
		delta = -1
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		changed, err := s.PostLikeDAO.SetStatus(tx, postID, userID, status)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return s.PostDAO.IncrLikeCount(tx, postID, delta)
	})
}

func (s *CommunityPostService) assemblePosts(ctx context.Context, posts []*models.CommunityPost, viewerID int64) ([]*types.PostItem, error) {
	if len(posts) == 0 {
		return []*types.PostItem{}, nil
	}

	ids := make([]int64, 0, len(posts))
	authorIDs := make([]int64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
		authorIDs = append(authorIDs, p.UserID)
	}

	authors, err := s.UserService.Summaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	liked := map[int64]bool{}
	if viewerID > 0 {
		liked, err = s.PostLikeDAO.BatchCheckLiked(ctx, ids, viewerID)
		if err != nil {
			return nil, err
		}
	}

	items := make([]*types.PostItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, &types.PostItem{
			ID:           p.ID,
			CommunityID:  p.CommunityID,
			Title:        p.Title,
			Content:      p.Content,
			ImageURL:     p.ImageURL,
			Author:       authors[p.UserID],
			LikeCount:    p.LikeCount,
			CommentCount: p.CommentCount,
			IsLiked:      liked[p.ID],
			CreatedAt:    p.CreatedAt,
		})
	}
	return items, nil
}

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

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CommentChannel carries comment create/delete events so open comment lists
// can refetch without polling.
const CommentChannel = "devhub:comments"

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, userID int64, req *types.CreateCommentRequest) (*types.CommentItem, error)
	ListRoots(ctx context.Context, targetType string, targetID, viewerID int64, cursor *types.CursorQuery) ([]*types.CommentItem, int64, error)
	ListReplies(ctx context.Context, rootID, viewerID int64, cursor *types.CursorQuery) ([]*types.CommentItem, int64, error)
	Delete(ctx context.Context, userID int64, role string, commentID int64) error
	Like(ctx context.Context, userID, commentID int64) error
	Unlike(ctx context.Context, userID, commentID int64) error
}

type CommentService struct {
	DB              *gorm.DB
	CommentDAO      *dao.Comment
	CommentLikeDAO  *dao.CommentLike
	ProjectDAO      *dao.ProjectDAO
	SnippetDAO      *dao.SnippetDAO
	ProjectStatsDAO *dao.ProjectStatsDAO
	SnippetStatsDAO *dao.SnippetStatsDAO
	UserService     IUserService
	StatsCache      *cache.StatsStorage
	Notify          INotificationService
	Redis           *redis.Client
}

// Create inserts the comment and bumps the target's comment counter in one
// transaction. Replies also bump the root's reply counter.
func (s *CommentService) Create(ctx context.Context, userID int64, req *types.CreateCommentRequest) (*types.CommentItem, error) {
	ownerID, err := s.targetOwner(ctx, req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}

	if req.RootID > 0 {
		root, err := s.CommentDAO.GetByID(ctx, req.RootID)
		if err != nil {
			return nil, err
		}
		if root == nil || root.RootID != 0 {
			return nil, errors.New("root comment not found")
		}
		if root.TargetType != req.TargetType || root.TargetID != req.TargetID {
			return nil, errors.New("root comment does not belong to target")
		}
		if req.ParentID == 0 {
			req.ParentID = req.RootID
		}
	}

	comment := &models.Comment{
		ID:         snowflake.GenID(),
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		UserID:     userID,
		Content:    req.Content,
		RootID:     req.RootID,
		ParentID:   req.ParentID,
		Status:     1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		if err := s.incrTargetCommentCount(tx, req.TargetType, req.TargetID, 1); err != nil {
			return err
		}
		if req.RootID > 0 {
			return s.CommentDAO.IncrReplyCount(tx, req.RootID, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.StatsCache.Del(ctx, req.TargetType, req.TargetID)
	s.publishEvent(ctx, "comment_created", req.TargetType, req.TargetID, comment.ID)
	if ownerID != userID {
		s.Notify.NotifyComment(ctx, userID, ownerID, comment.ID)
	}

	items, err := s.assemble(ctx, []*models.Comment{comment}, userID)
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *CommentService) ListRoots(ctx context.Context, targetType string, targetID, viewerID int64, cursor *types.CursorQuery) ([]*types.CommentItem, int64, error) {
	cursor.Normalize()
	comments, err := s.CommentDAO.GetRootCommentsByCursor(ctx, targetType, targetID, cursor.Cursor, cursor.Limit)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.assemble(ctx, comments, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return items, nextCommentCursor(comments), nil
}

func (s *CommentService) ListReplies(ctx context.Context, rootID, viewerID int64, cursor *types.CursorQuery) ([]*types.CommentItem, int64, error) {
	cursor.Normalize()
	replies, err := s.CommentDAO.GetRepliesByCursor(ctx, rootID, cursor.Cursor, cursor.Limit)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.assemble(ctx, replies, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return items, nextCommentCursor(replies), nil
}

// Delete hides the comment and rolls the counters back in one transaction.
// The author or an admin may delete.
func (s *CommentService) Delete(ctx context.Context, userID int64, role string, commentID int64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New("comment not found")
	}
	if comment.UserID != userID && role != models.UserRoleAdmin {
		return errors.New("not the comment author")
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.CommentDAO.SoftDelete(tx, commentID); err != nil {
			return err
		}
		if err := s.incrTargetCommentCount(tx, comment.TargetType, comment.TargetID, -1); err != nil {
			return err
		}
		if comment.RootID > 0 {
			return s.CommentDAO.IncrReplyCount(tx, comment.RootID, -1)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.StatsCache.Del(ctx, comment.TargetType, comment.TargetID)
	s.publishEvent(ctx, "comment_deleted", comment.TargetType, comment.TargetID, commentID)
	return nil
}

// publishEvent is best effort; a dropped event only delays the next refetch.
func (s *CommentService) publishEvent(ctx context.Context, action, targetType string, targetID, commentID int64) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(&types.CommentEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		CommentID:  commentID,
	})
	if err != nil {
		return
	}
	s.Redis.Publish(ctx, CommentChannel, payload)
}

// Like adds a like edge and bumps the on-row counter. The unique key on
// (comment_id, user_id) absorbs races; a duplicate insert is a no-op.
func (s *CommentService) Like(ctx context.Context, userID, commentID int64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New("comment not found")
	}

	exists, err := s.CommentLikeDAO.CheckExists(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := &models.CommentLike{CommentID: commentID, UserID: userID, CreatedAt: time.Now()}
		if err := s.CommentLikeDAO.Create(tx, like); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}
		return s.CommentDAO.IncrLikeCount(tx, commentID, 1)
	})
}

func (s *CommentService) Unlike(ctx context.Context, userID, commentID int64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		removed, err := s.CommentLikeDAO.Delete(tx, commentID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}
		return s.CommentDAO.IncrLikeCount(tx, commentID, -1)
	})
}

func (s *CommentService) targetOwner(ctx context.Context, targetType string, targetID int64) (int64, error) {
	switch targetType {
	case models.CommentTargetProject:
		project, err := s.ProjectDAO.GetByID(ctx, targetID)
		if err != nil {
			return 0, err
		}
		if project == nil {
			return 0, errors.New("project not found")
		}
		return project.UserID, nil
	case models.CommentTargetSnippet:
		snippet, err := s.SnippetDAO.GetByID(ctx, targetID)
		if err != nil {
			return 0, err
		}
		if snippet == nil {
			return 0, errors.New("snippet not found")
		}
		return snippet.UserID, nil
	default:
		return 0, errors.New("unknown comment target")
	}
}

func (s *CommentService) incrTargetCommentCount(tx *gorm.DB, targetType string, targetID int64, delta int64) error {
	if targetType == models.CommentTargetProject {
		return s.ProjectStatsDAO.IncrCommentCount(tx, targetID, delta)
	}
	return s.SnippetStatsDAO.IncrCommentCount(tx, targetID, delta)
}

func (s *CommentService) assemble(ctx context.Context, comments []*models.Comment, viewerID int64) ([]*types.CommentItem, error) {
	if len(comments) == 0 {
		return []*types.CommentItem{}, nil
	}

	ids := make([]int64, 0, len(comments))
	authorIDs := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
		authorIDs = append(authorIDs, c.UserID)
	}

	authors, err := s.UserService.Summaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	liked := map[int64]bool{}
	if viewerID > 0 {
		liked, err = s.CommentLikeDAO.BatchCheckExists(ctx, ids, viewerID)
		if err != nil {
			return nil, err
		}
	}

	items := make([]*types.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, &types.CommentItem{
			ID:         c.ID,
			Content:    c.Content,
			RootID:     c.RootID,
			ParentID:   c.ParentID,
			Author:     authors[c.UserID],
			LikeCount:  c.LikeCount,
			ReplyCount: c.ReplyCount,
			IsLiked:    liked[c.ID],
			CreatedAt:  c.CreatedAt,
		})
	}
	return items, nil
}

// nextCommentCursor derives the next page cursor from the last row.
func nextCommentCursor(comments []*models.Comment) int64 {
	if len(comments) == 0 {
		return 0
	}
	return comments[len(comments)-1].CreatedAt.UnixNano()
}

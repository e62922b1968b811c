package service

import (
	"context"
	"errors"
	"time"

	"DevHub/dao"
	"DevHub/models"
	"DevHub/pkg/log"
	"DevHub/pkg/snowflake"
	"DevHub/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Request(ctx context.Context, userID int64, req *types.RequestProRequest) (*types.SubscriptionItem, error)
	Review(ctx context.Context, reviewerID, subscriptionID int64, approve bool) error
	MyStatus(ctx context.Context, userID int64) (*types.SubscriptionItem, error)
	ListPending(ctx context.Context, page *types.PageQuery) ([]*types.SubscriptionItem, int64, error)
	ExpireSweep(ctx context.Context) error
}

type SubscriptionService struct {
	DB      *gorm.DB
	SubDAO  *dao.SubscriptionDAO
	UserDAO *dao.Users
	Notify  INotificationService
}

// Request files a PRO request with the payment receipt for manual review.
// One pending request per user.
func (s *SubscriptionService) Request(ctx context.Context, userID int64, req *types.RequestProRequest) (*types.SubscriptionItem, error) {
	pending, err := s.SubDAO.GetPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, errors.New("a request is already under review")
	}

	sub := &models.Subscription{
		ID:         snowflake.GenID(),
		UserID:     userID,
		Plan:       req.Plan,
		ReceiptURL: req.ReceiptURL,
		Status:     models.SubscriptionPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.SubDAO.Create(ctx, sub); err != nil {
		return nil, err
	}
	return buildSubscriptionItem(sub), nil
}

// Review settles a pending request. Approval flips the user's PRO flag in the
// same transaction, so there is never an approved request without the flag.
func (s *SubscriptionService) Review(ctx context.Context, reviewerID, subscriptionID int64, approve bool) error {
	sub, err := s.SubDAO.GetByID(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if sub == nil {
		return errors.New("subscription request not found")
	}

	status := models.SubscriptionRejected
	var expiresAt *time.Time
	if approve {
		status = models.SubscriptionApproved
		t := time.Now().AddDate(0, 1, 0)
		if sub.Plan == "yearly" {
			t = time.Now().AddDate(1, 0, 0)
		}
		expiresAt = &t
	}

	var settled bool
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		settled, err = s.SubDAO.Review(tx, subscriptionID, status, reviewerID, expiresAt)
		if err != nil {
			return err
		}
		if !settled || !approve {
			return nil
		}
		return tx.Model(&models.Users{}).
			Where("id = ?", sub.UserID).
			Updates(map[string]any{"is_pro": true, "pro_expires_at": expiresAt}).Error
	})
	if err != nil {
		return err
	}
	if !settled {
		return errors.New("request already reviewed")
	}

	title, content := "PRO request rejected", "Your PRO request was not approved."
	if approve {
		title, content = "Welcome to PRO", "Your PRO request was approved."
	}
	s.Notify.NotifySystem(ctx, sub.UserID, title, content, sub.ID)
	return nil
}

func (s *SubscriptionService) MyStatus(ctx context.Context, userID int64) (*types.SubscriptionItem, error) {
	pending, err := s.SubDAO.GetPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return buildSubscriptionItem(pending), nil
	}

	active, err := s.SubDAO.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	return buildSubscriptionItem(active), nil
}

func (s *SubscriptionService) ListPending(ctx context.Context, page *types.PageQuery) ([]*types.SubscriptionItem, int64, error) {
	page.Normalize()
	rows, total, err := s.SubDAO.ListByStatus(ctx, models.SubscriptionPending, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	items := make([]*types.SubscriptionItem, 0, len(rows))
	for _, sub := range rows {
		items = append(items, buildSubscriptionItem(sub))
	}
	return items, total, nil
}

// ExpireSweep drops the PRO flag for users whose approval has lapsed. Runs
// periodically from the server loop.
func (s *SubscriptionService) ExpireSweep(ctx context.Context) error {
	ids, err := s.UserDAO.ExpiredProIDs(ctx, time.Now())
	if err != nil {
		return err
	}
	for _, uid := range ids {
		if err := s.UserDAO.UpdateById(ctx, uid, map[string]any{"is_pro": false}); err != nil {
			log.L.Error("expire pro flag", zap.Int64("user_id", uid), zap.Error(err))
		}
	}
	return nil
}

func buildSubscriptionItem(sub *models.Subscription) *types.SubscriptionItem {
	return &types.SubscriptionItem{
		ID:         sub.ID,
		UserID:     sub.UserID,
		Plan:       sub.Plan,
		ReceiptURL: sub.ReceiptURL,
		Status:     sub.Status,
		ExpiresAt:  sub.ExpiresAt,
		CreatedAt:  sub.CreatedAt,
	}
}

package service

import (
	"context"
	"errors"
	"time"

	"DevHub/dao"
	"DevHub/models"
	"DevHub/pkg/snowflake"
	"DevHub/types"
)

var _ ISupportService = (*SupportService)(nil)

type ISupportService interface {
	Create(ctx context.Context, userID int64, req *types.CreateSupportRequest) (*models.SupportRequest, error)
	ListMine(ctx context.Context, userID int64, page *types.PageQuery) ([]*models.SupportRequest, int64, error)
	ListOpen(ctx context.Context, page *types.PageQuery) ([]*models.SupportRequest, int64, error)
	Resolve(ctx context.Context, requestID int64) error
}

type SupportService struct {
	SupportDAO *dao.SupportRequestDAO
	Notify     INotificationService
}

func (s *SupportService) Create(ctx context.Context, userID int64, req *types.CreateSupportRequest) (*models.SupportRequest, error) {
	item := &models.SupportRequest{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.SupportOpen,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.SupportDAO.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *SupportService) ListMine(ctx context.Context, userID int64, page *types.PageQuery) ([]*models.SupportRequest, int64, error) {
	page.Normalize()
	return s.SupportDAO.ListByUser(ctx, userID, page.PageSize, page.Offset())
}

func (s *SupportService) ListOpen(ctx context.Context, page *types.PageQuery) ([]*models.SupportRequest, int64, error) {
	page.Normalize()
	return s.SupportDAO.ListOpen(ctx, page.PageSize, page.Offset())
}

// Resolve closes the ticket and tells the requester.
func (s *SupportService) Resolve(ctx context.Context, requestID int64) error {
	item, err := s.SupportDAO.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.New("support request not found")
	}
	if item.Status == models.SupportResolved {
		return nil
	}

	if err := s.SupportDAO.Resolve(ctx, requestID); err != nil {
		return err
	}
	s.Notify.NotifySystem(ctx, item.UserID, "Support request resolved", item.Subject, item.ID)
	return nil
}

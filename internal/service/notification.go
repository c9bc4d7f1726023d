package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/models"
)

type NotificationService struct {
	db *gorm.DB
}

var _ INotificationService = (*NotificationService)(nil)

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// List returns notifications newest first.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, apperrors.Internal("failed to list notifications", err)
	}
	return notifications, nil
}

func (s *NotificationService) Create(ctx context.Context, title, message string) (*models.Notification, error) {
	title, message = strings.TrimSpace(title), strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, apperrors.Validation("Title and message are required")
	}
	n := models.Notification{Title: title, Message: message}
	if err := s.db.WithContext(ctx).Create(&n).Error; err != nil {
		return nil, apperrors.Internal("failed to create notification", err)
	}
	return &n, nil
}

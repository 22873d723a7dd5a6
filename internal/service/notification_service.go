package service

import (
	"context"
	"log"

	"ukmprhub/internal/apperr"
	"ukmprhub/internal/models"
	"ukmprhub/internal/repository"
)

const notificationLimit = 50

type NotificationService interface {
	List(ctx context.Context, userID int64) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	Notify(ctx context.Context, notification models.Notification)
}

type notificationService struct {
	notifications repository.NotificationRepository
}

func NewNotificationService(notifications repository.NotificationRepository) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	notifications, err := s.notifications.ListForUser(ctx, userID, notificationLimit)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return notifications, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.notifications.MarkAllRead(ctx, userID); err != nil {
		return apperr.Store(err)
	}
	return nil
}

// Notify records a notification unless the actor is the recipient. A
// failure is logged and does not fail the action that triggered it.
func (s *notificationService) Notify(ctx context.Context, notification models.Notification) {
	if notification.UserID == notification.FromUserID {
		return
	}

	notification.CreatedAt = nowMillis()
	if err := s.notifications.Create(ctx, &notification); err != nil {
		log.Printf("Failed to create %s notification for member %d: %v", notification.Type, notification.UserID, err)
	}
}

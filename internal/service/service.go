package service

import (
	"errors"
	"strings"
	"time"

	"ukmprhub/internal/ai"
	"ukmprhub/internal/apperr"
	"ukmprhub/internal/config"
	"ukmprhub/internal/repository"
	"ukmprhub/internal/storage"
)

type Service struct {
	Auth         AuthService
	Member       MemberService
	Feed         FeedService
	Catalog      CatalogService
	Notification NotificationService
	Brainstorm   BrainstormService
	Health       HealthService
	AI           ai.Service
}

func NewService(rep *repository.Repository, cfg *config.Config, media *storage.Media, content ai.Service, db Pinger) *Service {
	notifications := NewNotificationService(rep.Notification)

	return &Service{
		Auth:         NewAuthService(rep.Member, rep.Session, media, cfg.Session),
		Member:       NewMemberService(rep.Member, rep.Session, media),
		Feed:         NewFeedService(rep.Post, rep.Engagement, notifications, media),
		Catalog:      NewCatalogService(rep, media),
		Notification: notifications,
		Brainstorm:   NewBrainstormService(rep.Brainstorm, content),
		Health:       NewHealthService(db, rep.Tables),
		AI:           content,
	}
}

// nowMillis is the timestamp format stored in every created_at column.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// storeError maps repository.ErrNotFound onto a NotFound error carrying
// notFoundMsg and everything else onto a Store error.
func storeError(err error, notFoundMsg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(notFoundMsg)
	}
	return apperr.Store(err)
}

// trimmed returns nil for nil or blank strings.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

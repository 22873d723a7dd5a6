package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"ukmprhub/internal/ai"
	"ukmprhub/internal/config"
	"ukmprhub/internal/service"
)

type Handlers struct {
	AuthService         service.AuthService
	MemberService       service.MemberService
	FeedService         service.FeedService
	CatalogService      service.CatalogService
	NotificationService service.NotificationService
	BrainstormService   service.BrainstormService
	HealthService       service.HealthService
	AI                  ai.Service
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		MemberService:       services.Member,
		FeedService:         services.Feed,
		CatalogService:      services.Catalog,
		NotificationService: services.Notification,
		BrainstormService:   services.Brainstorm,
		HealthService:       services.Health,
		AI:                  services.AI,
		Cfg:                 cfg,
		Validate:            NewValidator(),
	}
}

// NewValidator reports field errors under their JSON names.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

package service

import (
	"fmt"

	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/store"
	"github.com/MKhiriev/go-slide-form/models"
)

// Services groups the server-side services used by the handlers.
type Services struct {
	AuthService    AuthService
	FormService    FormService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	formService := NewFormValidationService().Wrap(
		NewFormService(storages.Forms, storages.Responses, logger),
	)

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		FormService:    formService,
		AppInfoService: appInfoService,
	}, nil
}

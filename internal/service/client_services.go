package service

import (
	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/logger"
)

// ClientServices groups the services of the runner and the owner CLI.
type ClientServices struct {
	RunnerService     RunnerService
	SubmissionService SubmissionService
	OwnerService      OwnerService
}

func NewClientServices(formStore adapter.FormStore, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	scheme, err := crypto.ParseScheme(cfg.Crypto.Scheme)
	if err != nil {
		return nil, err
	}

	cryptoCfg := crypto.Config{
		ContentKeyParam: cfg.Crypto.ContentKeyParam,
		PublicKeyParam:  cfg.Crypto.PublicKeyParam,
		Scheme:          scheme,
	}

	return &ClientServices{
		RunnerService:     NewRunnerService(formStore, cryptoCfg),
		SubmissionService: NewSubmissionService(formStore, cfg.Adapter.RetryMaxElapsed),
		OwnerService:      NewOwnerService(formStore, logger),
	}, nil
}

package service

import (
	"context"

	"github.com/MKhiriev/go-slide-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FormService is the server side of the Form Store. It never decrypts:
// content fields and envelopes pass through as received.
type FormService interface {
	GetForm(ctx context.Context, formID string) (models.Form, error)
	// GetQuestions returns the form's questions ordered by Order. It fails
	// with store.ErrFormNotFound for an unknown form.
	GetQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error)
	// SubmitResponse stores one envelope and returns the assigned ID.
	SubmitResponse(ctx context.Context, formID string, envelope models.SubmissionEnvelope) (models.InsertResponseResult, error)

	// PublishForm creates or replaces a form definition owned by ownerID.
	PublishForm(ctx context.Context, ownerID string, request models.PublishRequest) (models.PublishResponse, error)
	// ListResponses returns the stored envelopes of a form to its owner.
	ListResponses(ctx context.Context, ownerID, formID string) ([]models.Response, error)
}

// AuthService issues and verifies owner bearer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, ownerID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

package service

import (
	"context"

	"github.com/MKhiriev/go-slide-form/internal/validators"
	"github.com/MKhiriev/go-slide-form/models"
)

// FormServiceWrapper decorates a FormService with additional behavior such
// as validation.
type FormServiceWrapper interface {
	Wrap(FormService) FormService
}

// formValidationService validates inbound payloads before they reach the
// wrapped FormService. Only shapes are checked; ciphertext stays opaque.
type formValidationService struct {
	inner     FormService
	validator validators.Validator
}

type formValidationWrapper struct {
	validator validators.Validator
}

// NewFormValidationService returns a wrapper that adds payload validation to
// any FormService.
func NewFormValidationService() FormServiceWrapper {
	return &formValidationWrapper{validator: validators.NewFormValidator()}
}

func (w *formValidationWrapper) Wrap(inner FormService) FormService {
	return &formValidationService{
		inner:     inner,
		validator: w.validator,
	}
}

func (v *formValidationService) GetForm(ctx context.Context, formID string) (models.Form, error) {
	if err := validators.ValidateFormID(formID); err != nil {
		return models.Form{}, err
	}
	return v.inner.GetForm(ctx, formID)
}

func (v *formValidationService) GetQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error) {
	if err := validators.ValidateFormID(formID); err != nil {
		return nil, err
	}
	return v.inner.GetQuestions(ctx, formID)
}

func (v *formValidationService) SubmitResponse(ctx context.Context, formID string, envelope models.SubmissionEnvelope) (models.InsertResponseResult, error) {
	if err := validators.ValidateFormID(formID); err != nil {
		return models.InsertResponseResult{}, err
	}
	if err := v.validator.Validate(ctx, envelope); err != nil {
		return models.InsertResponseResult{}, err
	}
	return v.inner.SubmitResponse(ctx, formID, envelope)
}

func (v *formValidationService) PublishForm(ctx context.Context, ownerID string, request models.PublishRequest) (models.PublishResponse, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PublishResponse{}, err
	}
	return v.inner.PublishForm(ctx, ownerID, request)
}

func (v *formValidationService) ListResponses(ctx context.Context, ownerID, formID string) ([]models.Response, error) {
	if err := validators.ValidateFormID(formID); err != nil {
		return nil, err
	}
	return v.inner.ListResponses(ctx, ownerID, formID)
}

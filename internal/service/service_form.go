package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/store"
	"github.com/MKhiriev/go-slide-form/internal/utils"
	"github.com/MKhiriev/go-slide-form/models"
)

// idGenerator issues identifiers for new rows.
type idGenerator interface {
	Generate() string
}

type formService struct {
	forms     store.FormRepository
	responses store.ResponseRepository

	responseIDs idGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewFormService constructs a [FormService] over the given repositories.
// Response IDs are ULIDs so they sort by submission time.
func NewFormService(forms store.FormRepository, responses store.ResponseRepository, logger *logger.Logger) FormService {
	return &formService{
		forms:       forms,
		responses:   responses,
		responseIDs: utils.NewULIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

func (s *formService) GetForm(ctx context.Context, formID string) (models.Form, error) {
	return s.forms.GetForm(ctx, formID)
}

// GetQuestions serves the question list. The form row is consulted only when
// the list is empty, to tell an unknown form from an empty one.
func (s *formService) GetQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error) {
	questions, err := s.forms.GetQuestions(ctx, formID)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		if _, err = s.forms.GetForm(ctx, formID); err != nil {
			return nil, err
		}
	}

	return questions, nil
}

// SubmitResponse stores the envelope verbatim under a fresh ULID. A resent
// envelope returns the ID it was first stored under.
func (s *formService) SubmitResponse(ctx context.Context, formID string, envelope models.SubmissionEnvelope) (models.InsertResponseResult, error) {
	log := logger.FromContext(ctx)

	if _, err := s.forms.GetForm(ctx, formID); err != nil {
		log.Err(err).Str("func", "formService.SubmitResponse").Str("form_id", formID).Msg("form lookup failed")
		return models.InsertResponseResult{}, err
	}

	response := models.Response{
		ID:        s.responseIDs.Generate(),
		FormID:    formID,
		Envelope:  envelope,
		CreatedAt: s.now().UTC(),
	}

	id, err := s.responses.InsertResponse(ctx, response)
	if err != nil {
		log.Err(err).Str("func", "formService.SubmitResponse").Str("form_id", formID).Msg("saving response failed")
		return models.InsertResponseResult{}, fmt.Errorf("saving response: %w", err)
	}

	return models.InsertResponseResult{ID: id}, nil
}

// PublishForm stamps ownership and ordering onto the request and replaces the
// stored definition. Order of every question is its position in the request.
func (s *formService) PublishForm(ctx context.Context, ownerID string, request models.PublishRequest) (models.PublishResponse, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return models.PublishResponse{}, ErrNoOwnerID
	}

	now := s.now().UTC()
	form := request.Form
	form.OwnerID = ownerID
	form.CreatedAt = now
	form.UpdatedAt = now

	questions := make([]models.QuestionRecord, len(request.Questions))
	for i, q := range request.Questions {
		q.FormID = form.ID
		q.Order = i
		questions[i] = q
	}

	if err := s.forms.SaveForm(ctx, form, questions); err != nil {
		log.Err(err).Str("func", "formService.PublishForm").Str("form_id", form.ID).Msg("publishing form failed")
		if errors.Is(err, store.ErrFormOwnedByAnother) {
			return models.PublishResponse{}, fmt.Errorf("%w: %w", ErrAccessToForeignForm, err)
		}
		return models.PublishResponse{}, fmt.Errorf("publishing form: %w", err)
	}

	return models.PublishResponse{FormID: form.ID, Questions: len(questions)}, nil
}

// ListResponses returns the form's envelopes when ownerID owns the form.
func (s *formService) ListResponses(ctx context.Context, ownerID, formID string) ([]models.Response, error) {
	log := logger.FromContext(ctx)

	if ownerID == "" {
		return nil, ErrNoOwnerID
	}

	form, err := s.forms.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form.OwnerID != ownerID {
		log.Warn().Str("func", "formService.ListResponses").Str("form_id", formID).Msg("responses requested by non-owner")
		return nil, ErrAccessToForeignForm
	}

	return s.responses.ListResponses(ctx, formID)
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/utils"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/hashicorp/go-multierror"
)

type ownerService struct {
	store adapter.FormStore
	ids   idGenerator

	logger *logger.Logger
}

// NewOwnerService returns the owner-side service. The store must carry an
// owner token for both operations.
func NewOwnerService(store adapter.FormStore, logger *logger.Logger) OwnerService {
	return &ownerService{
		store:  store,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (s *ownerService) Publish(ctx context.Context, contentKey []byte, def models.FormDefinition) (models.PublishRequest, models.PublishResponse, error) {
	log := logger.FromContext(ctx)

	request, err := s.encryptDefinition(contentKey, def)
	if err != nil {
		return models.PublishRequest{}, models.PublishResponse{}, err
	}

	response, err := s.store.PublishForm(ctx, request)
	if err != nil {
		log.Err(err).Str("func", "ownerService.Publish").Str("form_id", request.Form.ID).Msg("publishing form failed")
		return request, models.PublishResponse{}, mapAdapterError(err)
	}

	return request, response, nil
}

// encryptDefinition turns a plaintext definition into a publish request. Any
// field that fails to encrypt aborts the whole request.
func (s *ownerService) encryptDefinition(contentKey []byte, def models.FormDefinition) (models.PublishRequest, error) {
	cipher, err := crypto.NewContentCipher(contentKey, nil)
	if err != nil {
		return models.PublishRequest{}, err
	}

	formID := def.ID
	if formID == "" {
		formID = s.ids.Generate()
	}

	form := models.Form{ID: formID}
	if form.Title, err = cipher.EncryptText(def.Title); err != nil {
		return models.PublishRequest{}, fmt.Errorf("title: %w", err)
	}
	if form.Description, err = cipher.EncryptText(def.Description); err != nil {
		return models.PublishRequest{}, fmt.Errorf("description: %w", err)
	}

	questions := make([]models.QuestionRecord, 0, len(def.Questions))
	for i, qd := range def.Questions {
		q := models.QuestionRecord{
			ID:       qd.ID,
			FormID:   formID,
			Order:    i,
			Required: qd.Required,
			Type:     qd.Type,
		}
		if q.ID == "" {
			q.ID = s.ids.Generate()
		}

		if q.QuestionText, err = cipher.EncryptText(qd.Text); err != nil {
			return models.PublishRequest{}, fmt.Errorf("question %d text: %w", i, err)
		}
		if q.Description, err = cipher.EncryptText(qd.Description); err != nil {
			return models.PublishRequest{}, fmt.Errorf("question %d description: %w", i, err)
		}
		if qd.Type.HasOptions() {
			if q.Options, err = cipher.EncryptOptions(qd.Options); err != nil {
				return models.PublishRequest{}, fmt.Errorf("question %d options: %w", i, err)
			}
		}

		questions = append(questions, q)
	}

	return models.PublishRequest{Form: form, Questions: questions}, nil
}

func (s *ownerService) DecryptResponses(ctx context.Context, formID string, unwrapper crypto.KeyUnwrapper) ([]models.DecryptedResponse, error) {
	log := logger.FromContext(ctx)

	responses, err := s.store.ListResponses(ctx, formID)
	if err != nil {
		log.Err(err).Str("func", "ownerService.DecryptResponses").Str("form_id", formID).Msg("listing responses failed")
		return nil, mapAdapterError(err)
	}

	opener := crypto.NewEnvelopeOpener(unwrapper)
	out := make([]models.DecryptedResponse, 0, len(responses))

	var result *multierror.Error
	for _, r := range responses {
		decrypted := models.DecryptedResponse{ID: r.ID, CreatedAt: r.CreatedAt}

		answers, openErr := opener.Open(r.Envelope)
		if openErr != nil {
			decrypted.Error = openErr.Error()
			result = multierror.Append(result, fmt.Errorf("response %s: %w", r.ID, openErr))
		} else {
			decrypted.Answers = answers
		}

		out = append(out, decrypted)
	}

	return out, result.ErrorOrNil()
}

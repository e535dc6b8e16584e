package service

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/hashicorp/go-multierror"
)

type runnerService struct {
	store     adapter.FormStore
	keyLoader *crypto.KeyLoader

	// random feeds session keys and IVs; nil means crypto/rand.
	random io.Reader
}

// NewRunnerService returns the respondent-side loader bound to a form store
// and the share link settings in cfg.
func NewRunnerService(store adapter.FormStore, cfg crypto.Config) RunnerService {
	return &runnerService{
		store:     store,
		keyLoader: crypto.NewKeyLoader(cfg),
	}
}

func (s *runnerService) Load(ctx context.Context, shareLink string) (*FormSession, error) {
	log := logger.FromContext(ctx)

	// keys first: a broken link must not reach the store
	keys, err := s.keyLoader.Load(shareLink)
	if err != nil {
		log.Warn().Str("func", "runnerService.Load").Msg("share link carries no usable credentials")
		return nil, err
	}

	formID, err := ParseShareLink(shareLink)
	if err != nil {
		return nil, err
	}

	engine, err := crypto.NewEngine(keys, s.random)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrMissingCredentials, err)
	}

	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		log.Err(err).Str("func", "runnerService.Load").Str("form_id", formID).Msg("fetching form failed")
		return nil, mapAdapterError(err)
	}

	records, err := s.store.FetchQuestions(ctx, formID)
	if err != nil {
		log.Err(err).Str("func", "runnerService.Load").Str("form_id", formID).Msg("fetching questions failed")
		return nil, mapAdapterError(err)
	}
	if len(records) == 0 {
		return nil, ErrNoQuestions
	}

	slices.SortStableFunc(records, func(a, b models.QuestionRecord) int {
		return cmp.Compare(a.Order, b.Order)
	})

	decryptedForm, formErr := engine.DecryptForm(form)
	questions, questionsErr := engine.DecryptQuestions(records)

	decryptionErr := multierror.Append(nil, formErr, questionsErr).ErrorOrNil()
	if decryptionErr != nil {
		// field IDs only, never plaintext or keys
		log.Warn().Str("func", "runnerService.Load").Str("form_id", formID).Err(decryptionErr).Msg("some fields could not be decrypted")
	}

	return &FormSession{
		FormID:        formID,
		Form:          decryptedForm,
		Questions:     questions,
		DecryptionErr: decryptionErr,
		Sealer:        engine,
	}, nil
}

// ParseShareLink returns the form ID of a share link
// "<base>/form/<formID>#<fragment>". When the path has no "form" segment the
// last path segment is used.
func ParseShareLink(shareLink string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(shareLink))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidShareLink, err)
	}

	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return "", ErrInvalidShareLink
	}

	formID := segments[len(segments)-1]
	for i := 0; i < len(segments)-1; i++ {
		if segments[i] == "form" {
			formID = segments[i+1]
			break
		}
	}

	if formID == "form" || formID == "" {
		return "", ErrInvalidShareLink
	}
	return formID, nil
}

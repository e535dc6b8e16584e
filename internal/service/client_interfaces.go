package service

import (
	"context"

	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/models"
)

// FormSession is everything the runner needs to present a form and submit
// answers. Key material stays inside Sealer.
type FormSession struct {
	FormID    string
	Form      models.DecryptedForm
	Questions []models.DecryptedQuestion

	// DecryptionErr aggregates per-field decryption failures. The session is
	// still usable: failed fields are empty and flagged in their status.
	DecryptionErr error

	Sealer crypto.SubmissionSealer
}

// RunnerService opens a share link on the respondent side.
type RunnerService interface {
	// Load extracts the key material from the link fragment, then fetches and
	// decrypts the form. A link without usable credentials fails with
	// crypto.ErrMissingCredentials before the store is contacted.
	Load(ctx context.Context, shareLink string) (*FormSession, error)
}

// SubmissionService encrypts and sends one answer set.
type SubmissionService interface {
	// Submit is all-or-nothing: either one complete envelope is stored or
	// an error is returned. A call made while another one is in flight fails
	// with ErrSubmissionInProgress.
	Submit(ctx context.Context, formID string, sealer crypto.SubmissionSealer, answers models.AnswerSet) (models.InsertResponseResult, error)
}

// OwnerService covers the form owner's side: publishing encrypted definitions
// and opening collected responses.
type OwnerService interface {
	// Publish encrypts def with contentKey and uploads it. Missing form and
	// question IDs are generated; the returned request carries the IDs used.
	Publish(ctx context.Context, contentKey []byte, def models.FormDefinition) (models.PublishRequest, models.PublishResponse, error)

	// DecryptResponses lists and opens every response of a form. Responses
	// that fail to open are returned with Error set; the returned error
	// aggregates those failures.
	DecryptResponses(ctx context.Context, formID string, unwrapper crypto.KeyUnwrapper) ([]models.DecryptedResponse, error)
}

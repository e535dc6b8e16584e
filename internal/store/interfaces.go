package store

import (
	"context"

	"github.com/MKhiriev/go-slide-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FormRepository persists published forms and their question lists. Content
// fields are stored exactly as received; the store never decrypts them.
type FormRepository interface {
	// GetForm returns the form row or [ErrFormNotFound].
	GetForm(ctx context.Context, formID string) (models.Form, error)
	// GetQuestions returns the questions of a form ordered by Order
	// ascending. An unknown form yields an empty list.
	GetQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error)
	// SaveForm upserts the form row and replaces its question list in one
	// transaction. It fails with [ErrFormOwnedByAnother] when the form
	// exists under another owner.
	SaveForm(ctx context.Context, form models.Form, questions []models.QuestionRecord) error
}

// ResponseRepository persists submission envelopes.
type ResponseRepository interface {
	// InsertResponse stores the envelope and returns its response ID. A
	// resent envelope (same form and IV) yields the ID of the stored row.
	InsertResponse(ctx context.Context, response models.Response) (string, error)
	// ListResponses returns the responses of a form, oldest first.
	ListResponses(ctx context.Context, formID string) ([]models.Response, error)
}

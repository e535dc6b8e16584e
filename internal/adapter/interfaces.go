// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the form store API.
//
// [FormStore] decouples the runner and the owner tooling from the transport.
// The package ships an HTTP/REST implementation ([NewHTTPFormStore]) on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrStoreUnavailable] for 503 and transport failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-slide-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FormStore is the remote form store as seen by clients. Everything it
// carries is ciphertext; key material never passes through it.
type FormStore interface {
	// SetToken stores the owner bearer token used by PublishForm and
	// ListResponses.
	SetToken(token string)
	Token() string

	GetForm(ctx context.Context, formID string) (models.Form, error)

	// FetchQuestions returns the form's questions ordered by Order.
	FetchQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error)

	// InsertResponse stores one envelope and returns the ID the store
	// assigned to it.
	InsertResponse(ctx context.Context, formID string, envelope models.SubmissionEnvelope) (string, error)

	// PublishForm creates or replaces a form. Requires a token.
	PublishForm(ctx context.Context, request models.PublishRequest) (models.PublishResponse, error)

	// ListResponses returns the form's stored envelopes. Requires a token.
	ListResponses(ctx context.Context, formID string) ([]models.Response, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Unknown errors are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrFormNotFound, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgTokenIsExpired {
			return ErrTokenIsExpired
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessToForeignForm

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgFormIDMismatch:
			return ErrFormIDMismatch
		case app.MsgNoOwnerIDProvided:
			return ErrNoOwnerID
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// UserMessage returns the plain-language text shown to a respondent for err.
// It never includes the error chain.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrMissingCredentials), errors.Is(err, ErrInvalidShareLink):
		return app.UserMissingCredentials
	case errors.Is(err, crypto.ErrEncryptionFailed):
		return app.UserEncryptionFailed
	case errors.Is(err, crypto.ErrFieldDecryptionFailed):
		return app.UserFieldUndecryptable
	case errors.Is(err, store.ErrFormNotFound):
		return app.UserFormNotFound
	case errors.Is(err, ErrNoQuestions):
		return app.UserNoQuestions
	}
	return app.UserStoreUnavailable
}

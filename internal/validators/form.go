// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/models"
)

// Field name constants for field-level scoping.
const (
	FieldFormID      = "form_id"
	FieldTitle       = "title"
	FieldDescription = "description"

	FieldQuestionID   = "question_id"
	FieldQuestionType = "question_type"
	FieldQuestionText = "question_text"
	FieldOptions      = "options"

	FieldForm      = "form"
	FieldQuestions = "questions"

	FieldWrappedKey = "key"
	FieldIV         = "iv"
	FieldTag        = "tag"
	FieldData       = "data"
	FieldAlg        = "alg"
)

const (
	// MaxQuestions bounds a single publish.
	MaxQuestions = 500

	maxIDLength = 128

	// an encrypted field always carries at least IV and tag
	minEncryptedFieldSize = crypto.IVSize + crypto.TagSize
)

// FormValidator validates publish requests, their parts, and submission
// envelopes. Value and pointer forms are both accepted.
type FormValidator struct {
}

// NewFormValidator returns a [FormValidator] as [Validator].
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PublishRequest:
		return v.validatePublishRequest(ctx, value, fields...)
	case *models.PublishRequest:
		return v.validatePublishRequest(ctx, *value, fields...)

	case models.Form:
		return v.validateForm(ctx, value, fields...)
	case *models.Form:
		return v.validateForm(ctx, *value, fields...)

	case models.QuestionRecord:
		return v.validateQuestion(ctx, value, fields...)
	case *models.QuestionRecord:
		return v.validateQuestion(ctx, *value, fields...)

	case models.SubmissionEnvelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.SubmissionEnvelope:
		return v.validateEnvelope(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validatePublishRequest(ctx context.Context, request models.PublishRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldForm, FieldQuestions}
	}

	for _, f := range fields {
		switch f {
		case FieldForm:
			if err := v.validateForm(ctx, request.Form); err != nil {
				return err
			}
		case FieldQuestions:
			if len(request.Questions) == 0 {
				return ErrEmptyQuestions
			}
			if len(request.Questions) > MaxQuestions {
				return fmt.Errorf("%w: %d > %d", ErrTooManyQuestions, len(request.Questions), MaxQuestions)
			}

			seen := make(map[string]struct{}, len(request.Questions))
			for i, q := range request.Questions {
				if err := v.validateQuestion(ctx, q); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if _, dup := seen[q.ID]; dup {
					return fmt.Errorf("%w: %q", ErrDuplicateQuestionID, q.ID)
				}
				seen[q.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateForm(_ context.Context, form models.Form, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormID, FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldFormID:
			if !isValidID(form.ID) {
				return ErrInvalidFormID
			}
		case FieldTitle:
			if form.Title.IsEmpty() {
				return ErrEmptyTitle
			}
			if !isEncryptedField(form.Title) {
				return fmt.Errorf("%w: %s", ErrInvalidEncryptedData, FieldTitle)
			}
		case FieldDescription:
			if !form.Description.IsEmpty() && !isEncryptedField(form.Description) {
				return fmt.Errorf("%w: %s", ErrInvalidEncryptedData, FieldDescription)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateQuestion(_ context.Context, q models.QuestionRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestionID, FieldQuestionType, FieldQuestionText, FieldDescription, FieldOptions}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestionID:
			if !isValidID(q.ID) {
				return ErrInvalidQuestionID
			}
		case FieldQuestionType:
			if !q.Type.IsValid() {
				return fmt.Errorf("%w: %q", ErrInvalidQuestionType, q.Type)
			}
		case FieldQuestionText:
			if q.QuestionText.IsEmpty() {
				return ErrEmptyQuestionText
			}
			if !isEncryptedField(q.QuestionText) {
				return fmt.Errorf("%w: %s", ErrInvalidEncryptedData, FieldQuestionText)
			}
		case FieldDescription:
			if !q.Description.IsEmpty() && !isEncryptedField(q.Description) {
				return fmt.Errorf("%w: %s", ErrInvalidEncryptedData, FieldDescription)
			}
		case FieldOptions:
			switch {
			case q.Type.HasOptions() && q.Options.IsEmpty():
				return ErrMissingOptions
			case !q.Type.HasOptions() && !q.Options.IsEmpty():
				return ErrUnexpectedOptions
			case !q.Options.IsEmpty() && !isEncryptedField(q.Options):
				return fmt.Errorf("%w: %s", ErrInvalidEncryptedData, FieldOptions)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FormValidator) validateEnvelope(_ context.Context, env models.SubmissionEnvelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWrappedKey, FieldIV, FieldTag, FieldData, FieldAlg}
	}

	for _, f := range fields {
		switch f {
		case FieldWrappedKey:
			if n, ok := decodedLen(env.WrappedKey); !ok || n == 0 {
				return ErrEmptyWrappedKey
			}
		case FieldIV:
			if n, ok := decodedLen(env.IV); !ok || n != crypto.IVSize {
				return ErrInvalidIV
			}
		case FieldTag:
			if n, ok := decodedLen(env.Tag); !ok || n != crypto.TagSize {
				return ErrInvalidTag
			}
		case FieldData:
			if n, ok := decodedLen(env.Data); !ok || n == 0 {
				return ErrEmptyData
			}
		case FieldAlg:
			if _, err := crypto.ParseScheme(env.Alg); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidAlg, env.Alg)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidID accepts non-empty identifiers that are safe in a URL path.
func isValidID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return !strings.ContainsAny(id, "/#?% \t\r\n")
}

func isEncryptedField(f models.EncryptedField) bool {
	n, ok := decodedLen(f.String())
	return ok && n >= minEncryptedFieldSize
}

func decodedLen(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return 0, false
	}
	return len(raw), true
}

// ValidateFormID checks a form ID taken from a URL path.
func ValidateFormID(formID string) error {
	if !isValidID(formID) {
		return fmt.Errorf("%w: %q", ErrInvalidFormID, formID)
	}
	return nil
}

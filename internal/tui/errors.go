// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/runner"
	"github.com/MKhiriev/go-slide-form/internal/service"
)

// userMessage is the only text shown for an error. Answer validation errors
// are the respondent's own input and are shown as they are; everything else
// goes through the fixed messages.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, runner.ErrAnswerRequired):
		return app.UserRequiredAnswer
	case errors.Is(err, runner.ErrInvalidAnswer):
		return err.Error()
	case errors.Is(err, runner.ErrEmptyForm):
		return app.UserNoQuestions
	}
	return service.UserMessage(err)
}

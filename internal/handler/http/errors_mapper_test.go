package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/internal/store"
	"github.com/MKhiriev/go-slide-form/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"temporary wins over wrapped query error", fmt.Errorf("%w: %w", store.ErrStoreTemporary, store.ErrExecutingQuery), http.StatusServiceUnavailable},
		{"query error", fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"response not saved", store.ErrResponseNotSaved, http.StatusInternalServerError},
		{"form not found", store.ErrFormNotFound, http.StatusNotFound},
		{"owned by another", store.ErrFormOwnedByAnother, http.StatusForbidden},
		{"foreign form", service.ErrAccessToForeignForm, http.StatusForbidden},
		{"expired token", service.ErrTokenIsExpired, http.StatusUnauthorized},
		{"invalid token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"no owner", service.ErrNoOwnerID, http.StatusBadRequest},
		{"form id mismatch", service.ErrFormIDMismatch, http.StatusBadRequest},
		{"validation", fmt.Errorf("%w: x", validators.ErrEmptyQuestions), http.StatusBadRequest},
		{"joined validation", errors.Join(validators.ErrInvalidIV, validators.ErrInvalidTag), http.StatusBadRequest},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{"bad request uses error text", fmt.Errorf("%w: q9", validators.ErrInvalidQuestionType), http.StatusBadRequest, "invalid question type: q9"},
		{"no owner", service.ErrNoOwnerID, http.StatusBadRequest, app.MsgNoOwnerIDProvided},
		{"expired", service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
		{"invalid token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"forbidden", service.ErrAccessToForeignForm, http.StatusForbidden, app.MsgAccessDenied},
		{"not found", store.ErrFormNotFound, http.StatusNotFound, app.MsgFormNotFound},
		{"unavailable", store.ErrStoreTemporary, http.StatusServiceUnavailable, app.MsgStoreUnavailable},
		{"internal hides details", errors.New("pq: password authentication failed"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err, tt.status))
		})
	}
}

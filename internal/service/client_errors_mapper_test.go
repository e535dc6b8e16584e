package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "not found", in: fmt.Errorf("%w: form not found", adapter.ErrNotFound), want: store.ErrFormNotFound},
		{name: "expired", in: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired), want: ErrTokenIsExpired},
		{name: "invalid token", in: fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), want: ErrTokenIsExpiredOrInvalid},
		{name: "forbidden", in: fmt.Errorf("%w: %s", adapter.ErrForbidden, app.MsgAccessDenied), want: ErrAccessToForeignForm},
		{name: "id mismatch", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgFormIDMismatch), want: ErrFormIDMismatch},
		{name: "bad request", in: fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidDataProvided), want: ErrInvalidDataProvided},
		{name: "unavailable passes through", in: adapter.ErrStoreUnavailable, want: adapter.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "missing credentials", err: fmt.Errorf("%w: parameter \"q\" is absent", crypto.ErrMissingCredentials), want: app.UserMissingCredentials},
		{name: "bad link", err: ErrInvalidShareLink, want: app.UserMissingCredentials},
		{name: "encryption", err: crypto.ErrEncryptionFailed, want: app.UserEncryptionFailed},
		{name: "field", err: crypto.ErrFieldDecryptionFailed, want: app.UserFieldUndecryptable},
		{name: "not found", err: store.ErrFormNotFound, want: app.UserFormNotFound},
		{name: "no questions", err: ErrNoQuestions, want: app.UserNoQuestions},
		{name: "anything else", err: errors.New("dial tcp: connection refused"), want: app.UserStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_NeverLeaksDetail(t *testing.T) {
	err := fmt.Errorf("%w: content key: illegal base64 data at input byte 4", crypto.ErrMissingCredentials)

	msg := UserMessage(err)

	assert.NotContains(t, msg, "base64")
	assert.NotContains(t, msg, "content key")
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/internal/utils"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func nextMustNotRun(t *testing.T) http.Handler {
	return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("next handler must not be called")
	})
}

func TestAuth_ValidToken_StoresOwnerID(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{OwnerID: "owner-7"}, nil)

	var gotOwner string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner, ok := utils.GetOwnerIDFromContext(r.Context())
		require.True(t, ok)
		gotOwner = owner
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeAuth(h, "Bearer tok", next)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "owner-7", gotOwner)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parseErr error
		wantMsg  string
	}{
		{"missing header", "", nil, ErrEmptyAuthorizationHeader.Error()},
		{"not bearer", "Basic dXNlcjpwYXNz", nil, ErrInvalidAuthorizationHeader.Error()},
		{"bearer without token", "Bearer", nil, ErrInvalidAuthorizationHeader.Error()},
		{"expired", "Bearer tok", service.ErrTokenIsExpired, app.MsgTokenIsExpired},
		{"invalid", "Bearer tok", service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			if tt.parseErr != nil {
				svc.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{}, tt.parseErr)
			}

			rr := executeAuth(h, tt.header, nextMustNotRun(t))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantMsg, errorBody(t, rr))
		})
	}
}

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/mock"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/models"
	"go.uber.org/mock/gomock"
)

const testFormID = "0192a4c4-5b7e-7cc3-8a21-54f0f7f1b001"

type testServices struct {
	forms   *mock.MockFormService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	svc := testServices{
		forms:   mock.NewMockFormService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			FormService:    svc.forms,
			AuthService:    svc.auth,
			AppInfoService: svc.appInfo,
		},
	}
	return h, svc
}

func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	h, svc := newTestHandler(t)
	return h.Init(), svc
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}

// expectValidToken makes the auth middleware accept "Bearer good" as owner.
func (s testServices) expectValidToken(owner string) {
	s.auth.EXPECT().
		ParseToken(gomock.Any(), "good").
		Return(models.Token{OwnerID: owner}, nil)
}

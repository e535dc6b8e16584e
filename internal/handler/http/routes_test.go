package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-slide-form/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	svc.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.0.0", "", ""))
	svc.forms.EXPECT().GetForm(gomock.Any(), testFormID).Return(models.Form{ID: testFormID}, nil)
	svc.forms.EXPECT().GetQuestions(gomock.Any(), testFormID).Return([]models.QuestionRecord{}, nil)
	svc.forms.EXPECT().
		SubmitResponse(gomock.Any(), testFormID, gomock.Any()).
		Return(models.InsertResponseResult{ID: "01J"}, nil)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/version/", "", http.StatusOK},
		{http.MethodGet, "/api/forms/" + testFormID, "", http.StatusOK},
		{http.MethodGet, "/api/forms/" + testFormID + "/questions", "", http.StatusOK},
		{http.MethodPost, "/api/forms/" + testFormID + "/responses", `{"key":"k","iv":"i","tag":"t","data":"d"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// ---- Owner routes: require a bearer token ----

func TestInit_OwnerRoutes_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/forms/" + testFormID},
		{http.MethodGet, "/api/forms/" + testFormID + "/responses"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{}`))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_OwnerRoutes_WithToken(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.expectValidToken("owner-1")
	svc.forms.EXPECT().
		ListResponses(gomock.Any(), "owner-1", testFormID).
		Return([]models.Response{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/forms/"+testFormID+"/responses", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

// ---- Unknown methods and paths ----

func TestInit_UnsupportedMethod_Returns404(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/forms/" + testFormID},
		{http.MethodPatch, "/api/forms/" + testFormID + "/questions"},
		{http.MethodPost, "/api/version/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_TraceIDHeaderIsSet(t *testing.T) {
	router, svc := newTestRouter(t)
	svc.forms.EXPECT().GetForm(gomock.Any(), testFormID).Return(models.Form{ID: testFormID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/forms/"+testFormID, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

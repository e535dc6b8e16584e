package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/utils"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/go-resty/resty/v2"
)

type httpFormStore struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPFormStore constructs an HTTP/REST implementation of [FormStore].
// It normalises the base URL from cfg.HTTPAddress and applies the request
// timeout. A token in cfg is set right away.
func NewHTTPFormStore(cfg config.ClientAdapter, logger *logger.Logger) (FormStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	store := &httpFormStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	store.SetToken(cfg.Token)

	return store, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// owner requests.
func (h *httpFormStore) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpFormStore) Token() string {
	return h.token
}

// GetForm fetches GET /api/forms/{formID}.
func (h *httpFormStore) GetForm(ctx context.Context, formID string) (models.Form, error) {
	var form models.Form

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("formID", formID).
		SetResult(&form).
		Get("/api/forms/{formID}")
	if err != nil {
		return models.Form{}, fmt.Errorf("%w: get form request: %w", ErrStoreUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Form{}, err
	}

	return form, nil
}

// FetchQuestions fetches GET /api/forms/{formID}/questions.
func (h *httpFormStore) FetchQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error) {
	questions := make([]models.QuestionRecord, 0)

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("formID", formID).
		SetResult(&questions).
		Get("/api/forms/{formID}/questions")
	if err != nil {
		return nil, fmt.Errorf("%w: fetch questions request: %w", ErrStoreUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return questions, nil
}

// InsertResponse POSTs the envelope to /api/forms/{formID}/responses.
func (h *httpFormStore) InsertResponse(ctx context.Context, formID string, envelope models.SubmissionEnvelope) (string, error) {
	var result models.InsertResponseResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("formID", formID).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope).
		SetResult(&result).
		Post("/api/forms/{formID}/responses")
	if err != nil {
		return "", fmt.Errorf("%w: insert response request: %w", ErrStoreUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.ID, nil
}

// PublishForm PUTs the definition to /api/forms/{formID}.
func (h *httpFormStore) PublishForm(ctx context.Context, request models.PublishRequest) (models.PublishResponse, error) {
	var result models.PublishResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("formID", request.Form.ID).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&result).
		Put("/api/forms/{formID}")
	if err != nil {
		return models.PublishResponse{}, fmt.Errorf("%w: publish request: %w", ErrStoreUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublishResponse{}, err
	}

	return result, nil
}

// ListResponses fetches GET /api/forms/{formID}/responses.
func (h *httpFormStore) ListResponses(ctx context.Context, formID string) ([]models.Response, error) {
	responses := make([]models.Response, 0)

	resp, err := h.authedRequest(ctx).
		SetPathParam("formID", formID).
		SetResult(&responses).
		Get("/api/forms/{formID}/responses")
	if err != nil {
		return nil, fmt.Errorf("%w: list responses request: %w", ErrStoreUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return responses, nil
}

func (h *httpFormStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

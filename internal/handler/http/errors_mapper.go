package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/internal/store"
	"github.com/MKhiriev/go-slide-form/internal/utils"
	"github.com/MKhiriev/go-slide-form/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order. ErrStoreTemporary wraps the low-level
// store errors, so it has to come before them.
var errorStatuses = []errorStatus{
	{store.ErrStoreTemporary, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNoOwnerID, http.StatusBadRequest},
	{service.ErrFormIDMismatch, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAccessToForeignForm, http.StatusForbidden},

	{validators.ErrInvalidFormID, http.StatusBadRequest},
	{validators.ErrInvalidQuestionID, http.StatusBadRequest},
	{validators.ErrDuplicateQuestionID, http.StatusBadRequest},
	{validators.ErrInvalidQuestionType, http.StatusBadRequest},
	{validators.ErrInvalidEncryptedData, http.StatusBadRequest},
	{validators.ErrEmptyTitle, http.StatusBadRequest},
	{validators.ErrEmptyQuestionText, http.StatusBadRequest},
	{validators.ErrMissingOptions, http.StatusBadRequest},
	{validators.ErrUnexpectedOptions, http.StatusBadRequest},
	{validators.ErrEmptyQuestions, http.StatusBadRequest},
	{validators.ErrTooManyQuestions, http.StatusBadRequest},
	{validators.ErrEmptyWrappedKey, http.StatusBadRequest},
	{validators.ErrInvalidIV, http.StatusBadRequest},
	{validators.ErrInvalidTag, http.StatusBadRequest},
	{validators.ErrEmptyData, http.StatusBadRequest},
	{validators.ErrInvalidAlg, http.StatusBadRequest},

	{store.ErrFormNotFound, http.StatusNotFound},
	{store.ErrFormOwnedByAnother, http.StatusForbidden},
	{store.ErrResponseNotSaved, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the body message for err. Client errors carry the
// error text; server errors never leak internals.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		switch {
		case errors.Is(err, service.ErrNoOwnerID):
			return app.MsgNoOwnerIDProvided
		case errors.Is(err, service.ErrFormIDMismatch):
			return app.MsgFormIDMismatch
		case errors.Is(err, service.ErrVersionIsNotSpecified):
			return app.MsgVersionIsNotSpecified
		}
		return err.Error()
	case http.StatusUnauthorized:
		if errors.Is(err, service.ErrTokenIsExpired) {
			return app.MsgTokenIsExpired
		}
		return app.MsgTokenIsExpiredOrInvalid
	case http.StatusForbidden:
		return app.MsgAccessDenied
	case http.StatusNotFound:
		return app.MsgFormNotFound
	case http.StatusServiceUnavailable:
		return app.MsgStoreUnavailable
	default:
		return app.MsgInternalServerError
	}
}

// writeServiceError maps err to a status and writes the JSON error body.
func writeServiceError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	utils.WriteError(w, messageFromError(err, status), status)
	return status
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/utils"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	formID := chi.URLParam(r, "formID")

	form, err := h.services.FormService.GetForm(r.Context(), formID)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.getForm").Str("form_id", formID).Int("status", status).Msg("error getting form")
		return
	}

	utils.WriteJSON(w, form, http.StatusOK)
}

func (h *Handler) getQuestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	formID := chi.URLParam(r, "formID")

	questions, err := h.services.FormService.GetQuestions(r.Context(), formID)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.getQuestions").Str("form_id", formID).Int("status", status).Msg("error getting questions")
		return
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

// submitResponse stores one envelope. The body must be exactly the envelope
// object; unknown keys are rejected so a misspelled field never reaches the
// database as an empty column.
func (h *Handler) submitResponse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	formID := chi.URLParam(r, "formID")

	var envelope models.SubmissionEnvelope
	if err := decodeJSONBody(w, r, &envelope); err != nil {
		log.Err(err).Str("func", "*Handler.submitResponse").Str("form_id", formID).Msg(errInvalidJSON.Error())
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.FormService.SubmitResponse(r.Context(), formID, envelope)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.submitResponse").Str("form_id", formID).Int("status", status).Msg("error saving response")
		return
	}

	log.Info().Str("func", "*Handler.submitResponse").Str("form_id", formID).Str("response_id", result.ID).Msg("response stored")
	utils.WriteJSON(w, result, http.StatusCreated)
}

func (h *Handler) publishForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	formID := chi.URLParam(r, "formID")

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.publishForm").Msg("no owner ID was given")
		utils.WriteError(w, app.MsgNoOwnerIDProvided, http.StatusBadRequest)
		return
	}

	var request models.PublishRequest
	if err := decodeJSONBody(w, r, &request); err != nil {
		log.Err(err).Str("func", "*Handler.publishForm").Str("form_id", formID).Msg(errInvalidJSON.Error())
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	switch request.Form.ID {
	case "":
		request.Form.ID = formID
	case formID:
	default:
		log.Warn().Str("func", "*Handler.publishForm").Str("form_id", formID).Str("body_form_id", request.Form.ID).Msg("form id mismatch")
		utils.WriteError(w, app.MsgFormIDMismatch, http.StatusBadRequest)
		return
	}

	response, err := h.services.FormService.PublishForm(ctx, ownerID, request)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.publishForm").Str("form_id", formID).Int("status", status).Msg("error publishing form")
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listResponses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	formID := chi.URLParam(r, "formID")

	ownerID, found := utils.GetOwnerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listResponses").Msg("no owner ID was given")
		utils.WriteError(w, app.MsgNoOwnerIDProvided, http.StatusBadRequest)
		return
	}

	responses, err := h.services.FormService.ListResponses(ctx, ownerID, formID)
	if err != nil {
		status := writeServiceError(w, err)
		log.Err(err).Str("func", "*Handler.listResponses").Str("form_id", formID).Int("status", status).Msg("error listing responses")
		return
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

// decodeJSONBody decodes exactly one JSON value of at most maxBodyBytes.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errors.Join(errInvalidJSON, err)
	}
	if decoder.More() {
		return errInvalidJSON
	}
	return nil
}

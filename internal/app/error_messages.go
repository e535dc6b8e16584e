// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings.
//
// Msg* constants are written into HTTP error bodies by the form store.
// User* constants are the only texts the runner shows for fatal and
// recoverable failures; they never carry key material or error chains.
package app

// API messages written by the form store handlers.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgStoreUnavailable is returned when the database reports a transient
	// failure. The client may retry.
	MsgStoreUnavailable = "form store temporarily unavailable"

	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoOwnerIDProvided is returned when an owner-only route is reached
	// without an owner identity in the request context.
	MsgNoOwnerIDProvided = "no owner ID provided"

	MsgFormNotFound = "form not found"

	// MsgAccessDenied is returned when an owner reads or republishes a form
	// that belongs to a different owner.
	MsgAccessDenied = "access denied"

	MsgFormIDMismatch = "form id in body does not match the url"

	MsgVersionIsNotSpecified = "version is not specified"
)

// Messages shown to respondents by the runner.
const (
	UserMissingCredentials = "This form link is incomplete or damaged. Ask the form owner for a new link."
	UserFieldUndecryptable = "(this content could not be decrypted)"
	UserEncryptionFailed   = "Your answers could not be encrypted. Nothing was sent. Please try again."
	UserStoreUnavailable   = "The form service is unavailable. Please try again."
	UserFormNotFound       = "Form not found."
	UserNoQuestions        = "This form has no questions."
	UserSubmitted          = "Thank you! Your answers were sent."
	UserRequiredAnswer     = "This question requires an answer."
)

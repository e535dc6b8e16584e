package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrNoOwnerID               = errors.New("no owner ID provided")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrAccessToForeignForm is returned when an owner reads or republishes
	// a form that belongs to someone else.
	ErrAccessToForeignForm = errors.New("form belongs to a different owner")

	// ErrFormIDMismatch is returned when the form ID in the request body
	// differs from the one in the URL.
	ErrFormIDMismatch = errors.New("form id in body does not match the url")
)

// Client-side errors.
var (
	// ErrSubmissionInProgress is returned when Submit is called while another
	// submission of the same runner is still in flight.
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrInvalidShareLink is returned when a share link carries no form ID.
	ErrInvalidShareLink = errors.New("share link does not name a form")

	// ErrNoQuestions is returned when a form exists but has no questions.
	ErrNoQuestions = errors.New("form has no questions")
)

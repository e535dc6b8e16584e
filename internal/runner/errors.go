package runner

import "errors"

var (
	// ErrInvalidTransition is returned when an event is not allowed in the
	// machine's current state.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrEmptyForm is returned by Loaded when the question list is empty.
	ErrEmptyForm = errors.New("form has no questions")

	// ErrAnswerRequired is returned when a required question has no answer.
	ErrAnswerRequired = errors.New("answer is required")

	// ErrInvalidAnswer wraps every parse or range failure of a kind.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrLastQuestion is returned by Next on the last question; Submit is
	// the only way forward from there.
	ErrLastQuestion = errors.New("already at the last question")

	// ErrFirstQuestion is returned by Back on the first question.
	ErrFirstQuestion = errors.New("already at the first question")
)

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidFormID        = errors.New("invalid form id")
	ErrInvalidQuestionID    = errors.New("invalid question id")
	ErrDuplicateQuestionID  = errors.New("duplicate question id")
	ErrInvalidQuestionType  = errors.New("invalid question type")
	ErrInvalidEncryptedData = errors.New("invalid encrypted field")
	ErrEmptyTitle           = errors.New("form title is required")
	ErrEmptyQuestionText    = errors.New("question text is required")
	ErrMissingOptions       = errors.New("choice question requires options")
	ErrUnexpectedOptions    = errors.New("options are only allowed on choice questions")
	ErrEmptyQuestions       = errors.New("questions list cannot be empty")
	ErrTooManyQuestions     = errors.New("too many questions")

	ErrEmptyWrappedKey = errors.New("wrapped key is required")
	ErrInvalidIV       = errors.New("invalid iv")
	ErrInvalidTag      = errors.New("invalid tag")
	ErrEmptyData       = errors.New("data is required")
	ErrInvalidAlg      = errors.New("unsupported key-wrap algorithm")
)

package models

// QuestionType discriminates the rendering and validation variant of a
// question.
type QuestionType string

const (
	QuestionText           QuestionType = "text"
	QuestionLongText       QuestionType = "long_text"
	QuestionEmail          QuestionType = "email"
	QuestionNumber         QuestionType = "number"
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionRating         QuestionType = "rating"
	QuestionYesNo          QuestionType = "yes_no"
)

// AllQuestionTypes lists every supported discriminator.
var AllQuestionTypes = []QuestionType{
	QuestionText,
	QuestionLongText,
	QuestionEmail,
	QuestionNumber,
	QuestionSingleChoice,
	QuestionMultipleChoice,
	QuestionRating,
	QuestionYesNo,
}

// IsValid reports whether t is one of [AllQuestionTypes].
func (t QuestionType) IsValid() bool {
	for _, known := range AllQuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HasOptions reports whether questions of this type carry an option list.
func (t QuestionType) HasOptions() bool {
	return t == QuestionSingleChoice || t == QuestionMultipleChoice
}

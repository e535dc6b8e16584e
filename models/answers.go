// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AnswerSet maps a question identifier to the respondent's value. Values are
// whatever the question kind produces: string, []string, float64, bool or a
// nested object. It lives only in the respondent's memory until it is
// encrypted for submission.
type AnswerSet map[string]any

// Clone returns a shallow copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// FieldStatus reports the outcome of decrypting one EncryptedField.
type FieldStatus struct {
	// Failed is true when the ciphertext was corrupt or did not authenticate.
	// The matching plaintext value is then empty and must be rendered as such.
	Failed bool `json:"failed"`
}

// DecryptedQuestion is the plaintext view of a [QuestionRecord] handed to the
// runner UI. Per-field statuses let the UI render a damaged field as empty
// while keeping the rest of the question usable.
type DecryptedQuestion struct {
	ID       string       `json:"id"`
	Order    int          `json:"order"`
	Required bool         `json:"required"`
	Type     QuestionType `json:"question_type"`

	Text        string   `json:"question_text"`
	Description string   `json:"description"`
	Options     []string `json:"options"`

	TextStatus        FieldStatus `json:"question_text_status"`
	DescriptionStatus FieldStatus `json:"description_status"`
	OptionsStatus     FieldStatus `json:"options_status"`
}

// HasFailures reports whether any field of the question failed to decrypt.
func (q DecryptedQuestion) HasFailures() bool {
	return q.TextStatus.Failed || q.DescriptionStatus.Failed || q.OptionsStatus.Failed
}

// DecryptedForm is the plaintext view of a [Form].
type DecryptedForm struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	TitleStatus       FieldStatus `json:"title_status"`
	DescriptionStatus FieldStatus `json:"description_status"`
}

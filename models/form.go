// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Form is a published survey as the store keeps it. Title and Description are
// encrypted with the form's content key; the store never sees them in clear.
type Form struct {
	// ID is the public identifier of the form (UUID v7), part of the share link.
	ID string `json:"id"`

	// OwnerID is the subject of the token that first published the form.
	// Only the owner may republish the form or list its responses.
	OwnerID string `json:"-"`

	Title       EncryptedField `json:"title"`
	Description EncryptedField `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuestionRecord is one slide of a form. The three content fields are
// ciphertext; everything the store needs for ordering and rendering decisions
// (order, type, required) stays in clear.
type QuestionRecord struct {
	ID       string       `json:"id"`
	FormID   string       `json:"form_id"`
	Order    int          `json:"order"`
	Required bool         `json:"required"`
	Type     QuestionType `json:"question_type"`

	QuestionText EncryptedField `json:"question_text"`
	Description  EncryptedField `json:"description,omitempty"`
	// Options holds the encrypted JSON array of option labels
	// (e.g. ["Red","Green"]). Empty for non-choice questions.
	Options EncryptedField `json:"options,omitempty"`
}

// PublishRequest replaces the stored definition of a form: the form row is
// upserted and the question list is replaced as a whole.
type PublishRequest struct {
	Form      Form             `json:"form"`
	Questions []QuestionRecord `json:"questions"`
}

// PublishResponse is returned by the store after a successful publish.
type PublishResponse struct {
	FormID    string `json:"form_id"`
	Questions int    `json:"questions"`
}

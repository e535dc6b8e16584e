// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SubmissionEnvelope is the encrypted form of one submitted [AnswerSet].
//
// All binary fields are base64 (standard alphabet). A fresh session key and
// IV are generated for every envelope.
type SubmissionEnvelope struct {
	// WrappedKey is the per-submission AES-256 session key encrypted to the
	// form owner's public key.
	WrappedKey string `json:"key"`
	// IV is the 12-byte AES-GCM nonce used for Data.
	IV string `json:"iv"`
	// Tag is the 16-byte AES-GCM authentication tag of Data.
	Tag string `json:"tag"`
	// Data is the AES-GCM ciphertext of the JSON-serialized AnswerSet.
	Data string `json:"data"`
	// Alg names the key-wrap scheme. Empty means RSA-OAEP-256.
	Alg string `json:"alg,omitempty"`
}

// Response is a stored submission.
type Response struct {
	// ID is a ULID assigned by the store on insert.
	ID        string             `json:"id"`
	FormID    string             `json:"form_id"`
	Envelope  SubmissionEnvelope `json:"envelope"`
	CreatedAt time.Time          `json:"created_at"`
}

// InsertResponseResult is returned by the store after a response was saved.
type InsertResponseResult struct {
	ID string `json:"id"`
}

// DecryptedResponse is a response opened by the form owner.
type DecryptedResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Answers   AnswerSet `json:"answers,omitempty"`
	// Error is set when the envelope could not be opened; Answers is nil then.
	Error string `json:"error,omitempty"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-slide-form/models"
)

// SubmissionEncryptor implements [SubmissionSealer] with hybrid encryption:
// a fresh AES-256-GCM session key per submission, wrapped to the recipient.
type SubmissionEncryptor struct {
	recipient KeyWrapper
	random    io.Reader
}

// NewSubmissionEncryptor builds a [SubmissionEncryptor]. random is the entropy
// source for session keys, IVs and the wrap; nil selects crypto/rand.
func NewSubmissionEncryptor(recipient KeyWrapper, random io.Reader) *SubmissionEncryptor {
	if random == nil {
		random = rand.Reader
	}
	return &SubmissionEncryptor{recipient: recipient, random: random}
}

// EncryptSubmission implements [SubmissionSealer].
func (e *SubmissionEncryptor) EncryptSubmission(answers models.AnswerSet) (models.SubmissionEnvelope, error) {
	if e.recipient == nil {
		return models.SubmissionEnvelope{}, fmt.Errorf("%w: no recipient key", ErrEncryptionFailed)
	}
	if answers == nil {
		answers = models.AnswerSet{}
	}

	payload, err := json.Marshal(answers)
	if err != nil {
		return models.SubmissionEnvelope{}, fmt.Errorf("%w: marshal answers: %w", ErrEncryptionFailed, err)
	}

	sessionKey := make([]byte, ContentKeySize)
	defer clear(sessionKey)
	if _, err = io.ReadFull(e.random, sessionKey); err != nil {
		return models.SubmissionEnvelope{}, fmt.Errorf("%w: generate session key: %w", ErrEncryptionFailed, err)
	}

	iv := make([]byte, IVSize)
	if _, err = io.ReadFull(e.random, iv); err != nil {
		return models.SubmissionEnvelope{}, fmt.Errorf("%w: generate iv: %w", ErrEncryptionFailed, err)
	}

	aead, err := newGCM(sessionKey)
	if err != nil {
		return models.SubmissionEnvelope{}, fmt.Errorf("%w: %w", ErrEncryptionFailed, err)
	}
	ct, tag := seal(aead, iv, payload)

	wrapped, err := e.recipient.Wrap(e.random, sessionKey)
	if err != nil {
		return models.SubmissionEnvelope{}, fmt.Errorf("%w: wrap session key: %w", ErrEncryptionFailed, err)
	}

	env := models.SubmissionEnvelope{
		WrappedKey: base64.StdEncoding.EncodeToString(wrapped),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Tag:        base64.StdEncoding.EncodeToString(tag),
		Data:       base64.StdEncoding.EncodeToString(ct),
	}
	if scheme := e.recipient.Scheme(); scheme != SchemeRSAOAEP256 {
		env.Alg = string(scheme)
	}

	return env, nil
}

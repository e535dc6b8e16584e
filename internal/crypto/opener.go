// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-slide-form/models"
)

// EnvelopeOpener is the form owner's inverse of [SubmissionEncryptor].
type EnvelopeOpener struct {
	unwrapper KeyUnwrapper
}

// NewEnvelopeOpener returns an opener backed by the owner's private key.
func NewEnvelopeOpener(unwrapper KeyUnwrapper) *EnvelopeOpener {
	return &EnvelopeOpener{unwrapper: unwrapper}
}

// Open unwraps the session key, authenticates the payload and decodes the
// answer set. Every failure wraps [ErrEnvelopeOpenFailed].
func (o *EnvelopeOpener) Open(env models.SubmissionEnvelope) (models.AnswerSet, error) {
	scheme, err := ParseScheme(env.Alg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnvelopeOpenFailed, err)
	}
	if scheme != o.unwrapper.Scheme() {
		return nil, fmt.Errorf("%w: envelope uses %s, key is %s", ErrEnvelopeOpenFailed, scheme, o.unwrapper.Scheme())
	}

	wrapped, err := base64.StdEncoding.DecodeString(env.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: decode key: %w", ErrEnvelopeOpenFailed, err)
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil || len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes", ErrEnvelopeOpenFailed, IVSize)
	}
	tag, err := base64.StdEncoding.DecodeString(env.Tag)
	if err != nil || len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes", ErrEnvelopeOpenFailed, TagSize)
	}
	ct, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode data: %w", ErrEnvelopeOpenFailed, err)
	}

	sessionKey, err := o.unwrapper.Unwrap(wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap session key: %w", ErrEnvelopeOpenFailed, err)
	}
	defer clear(sessionKey)
	if len(sessionKey) != ContentKeySize {
		return nil, fmt.Errorf("%w: session key must be %d bytes", ErrEnvelopeOpenFailed, ContentKeySize)
	}

	aead, err := newGCM(sessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnvelopeOpenFailed, err)
	}
	payload, err := open(aead, iv, tag, ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnvelopeOpenFailed, err)
	}

	var answers models.AnswerSet
	if err = json.Unmarshal(payload, &answers); err != nil {
		return nil, fmt.Errorf("%w: decode answers: %w", ErrEnvelopeOpenFailed, err)
	}

	return answers, nil
}

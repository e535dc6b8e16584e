// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"io"
)

// Engine is the respondent-side facade over one share link's key material:
// content decryption plus submission encryption.
type Engine struct {
	*ContentCipher
	*SubmissionEncryptor
}

// NewEngine builds an [Engine] from loaded key material. random feeds IVs and
// session keys; nil selects crypto/rand.
func NewEngine(keys KeyMaterial, random io.Reader) (*Engine, error) {
	if random == nil {
		random = rand.Reader
	}

	content, err := NewContentCipher(keys.ContentKey, random)
	if err != nil {
		return nil, err
	}

	return &Engine{
		ContentCipher:       content,
		SubmissionEncryptor: NewSubmissionEncryptor(keys.Recipient, random),
	}, nil
}

var (
	_ FieldDecryptor   = (*Engine)(nil)
	_ SubmissionSealer = (*Engine)(nil)
)

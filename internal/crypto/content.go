// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-slide-form/models"
	"github.com/hashicorp/go-multierror"
)

const (
	// ContentKeySize is the length of the AES-256 content and session keys.
	ContentKeySize = 32
	// IVSize is the AES-GCM nonce length used everywhere in the envelope.
	IVSize = 12
	// TagSize is the AES-GCM authentication tag length.
	TagSize = 16
)

// ContentCipher encrypts and decrypts EncryptedField values with the form's
// content key. The blob layout is IV || Tag || Ciphertext.
type ContentCipher struct {
	aead   cipher.AEAD
	random io.Reader
}

// NewContentCipher builds a [ContentCipher] for a 32-byte key. random is used
// for IVs when encrypting; nil selects crypto/rand.
func NewContentCipher(key []byte, random io.Reader) (*ContentCipher, error) {
	if len(key) != ContentKeySize {
		return nil, fmt.Errorf("%w: content key must be %d bytes, got %d", ErrMissingCredentials, ContentKeySize, len(key))
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingCredentials, err)
	}

	if random == nil {
		random = rand.Reader
	}

	return &ContentCipher{aead: aead, random: random}, nil
}

// EncryptField seals plaintext under a fresh IV and returns the base64 blob.
func (c *ContentCipher) EncryptField(plaintext []byte) (models.EncryptedField, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	ct, tag := seal(c.aead, iv, plaintext)

	blob := make([]byte, 0, IVSize+TagSize+len(ct))
	blob = append(blob, iv...)
	blob = append(blob, tag...)
	blob = append(blob, ct...)

	return models.EncryptedField(base64.StdEncoding.EncodeToString(blob)), nil
}

// EncryptText is EncryptField for strings. An empty string stays an empty
// field.
func (c *ContentCipher) EncryptText(text string) (models.EncryptedField, error) {
	if text == "" {
		return "", nil
	}
	return c.EncryptField([]byte(text))
}

// EncryptOptions encrypts the canonical JSON array of option labels. A nil or
// empty list yields an empty field.
func (c *ContentCipher) EncryptOptions(options []string) (models.EncryptedField, error) {
	if len(options) == 0 {
		return "", nil
	}
	payload, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("marshal options: %w", err)
	}
	return c.EncryptField(payload)
}

// DecryptField implements [FieldDecryptor]. An empty field decrypts to an
// empty plaintext.
func (c *ContentCipher) DecryptField(field models.EncryptedField) ([]byte, error) {
	if field.IsEmpty() {
		return []byte{}, nil
	}

	blob, err := base64.StdEncoding.DecodeString(field.String())
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrFieldDecryptionFailed, err)
	}
	if len(blob) < IVSize+TagSize {
		return nil, fmt.Errorf("%w: blob of %d bytes is shorter than iv and tag", ErrFieldDecryptionFailed, len(blob))
	}

	iv, tag, ct := blob[:IVSize], blob[IVSize:IVSize+TagSize], blob[IVSize+TagSize:]

	plaintext, err := open(c.aead, iv, tag, ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFieldDecryptionFailed, err)
	}
	if plaintext == nil {
		plaintext = []byte{}
	}

	return plaintext, nil
}

// DecryptText decrypts a UTF-8 field.
func (c *ContentCipher) DecryptText(field models.EncryptedField) (string, error) {
	plaintext, err := c.DecryptField(field)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// DecryptOptions decrypts an option list. A plaintext that is not a JSON array
// of strings counts as a field failure.
func (c *ContentCipher) DecryptOptions(field models.EncryptedField) ([]string, error) {
	plaintext, err := c.DecryptField(field)
	if err != nil {
		return nil, err
	}
	if len(plaintext) == 0 {
		return []string{}, nil
	}

	var options []string
	if err = json.Unmarshal(plaintext, &options); err != nil {
		return nil, fmt.Errorf("%w: options are not a string array: %w", ErrFieldDecryptionFailed, err)
	}
	if options == nil {
		options = []string{}
	}

	return options, nil
}

// DecryptQuestion decrypts the three content fields of q independently. A
// failed field is left empty, flagged in its status and reported in the
// returned error. The question itself is always returned.
func (c *ContentCipher) DecryptQuestion(q models.QuestionRecord) (models.DecryptedQuestion, error) {
	out := models.DecryptedQuestion{
		ID:       q.ID,
		Order:    q.Order,
		Required: q.Required,
		Type:     q.Type,
		Options:  []string{},
	}

	var result *multierror.Error

	text, err := c.DecryptText(q.QuestionText)
	if err != nil {
		out.TextStatus.Failed = true
		result = multierror.Append(result, fieldError(q.ID, "question_text", err))
	} else {
		out.Text = text
	}

	description, err := c.DecryptText(q.Description)
	if err != nil {
		out.DescriptionStatus.Failed = true
		result = multierror.Append(result, fieldError(q.ID, "description", err))
	} else {
		out.Description = description
	}

	options, err := c.DecryptOptions(q.Options)
	if err != nil {
		out.OptionsStatus.Failed = true
		result = multierror.Append(result, fieldError(q.ID, "options", err))
	} else {
		out.Options = options
	}

	return out, result.ErrorOrNil()
}

// DecryptQuestions decrypts every record and returns a list of the same length
// and order. The error aggregates all field failures.
func (c *ContentCipher) DecryptQuestions(records []models.QuestionRecord) ([]models.DecryptedQuestion, error) {
	out := make([]models.DecryptedQuestion, 0, len(records))

	var result *multierror.Error
	for _, record := range records {
		q, err := c.DecryptQuestion(record)
		if err != nil {
			result = multierror.Append(result, err)
		}
		out = append(out, q)
	}

	return out, result.ErrorOrNil()
}

// DecryptForm decrypts the title and description of a form, with the same
// per-field tolerance as [ContentCipher.DecryptQuestion].
func (c *ContentCipher) DecryptForm(form models.Form) (models.DecryptedForm, error) {
	out := models.DecryptedForm{ID: form.ID}

	var result *multierror.Error

	title, err := c.DecryptText(form.Title)
	if err != nil {
		out.TitleStatus.Failed = true
		result = multierror.Append(result, fieldError(form.ID, "title", err))
	} else {
		out.Title = title
	}

	description, err := c.DecryptText(form.Description)
	if err != nil {
		out.DescriptionStatus.Failed = true
		result = multierror.Append(result, fieldError(form.ID, "description", err))
	} else {
		out.Description = description
	}

	return out, result.ErrorOrNil()
}

// IsFieldFailure reports whether err only carries field decryption failures.
// For a [*multierror.Error] every entry must be one.
func IsFieldFailure(err error) bool {
	if err == nil {
		return false
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return errors.Is(err, ErrFieldDecryptionFailed)
	}
	if len(merr.Errors) == 0 {
		return false
	}
	for _, e := range merr.Errors {
		if !errors.Is(e, ErrFieldDecryptionFailed) {
			return false
		}
	}
	return true
}

func fieldError(id, field string, err error) error {
	return fmt.Errorf("%s.%s: %w", id, field, err)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// seal returns ciphertext and tag separately. cipher.AEAD appends the tag.
func seal(aead cipher.AEAD, iv, plaintext []byte) (ct, tag []byte) {
	sealed := aead.Seal(nil, iv, plaintext, nil)
	split := len(sealed) - TagSize
	return sealed[:split], sealed[split:]
}

func open(aead cipher.AEAD, iv, tag, ct []byte) ([]byte, error) {
	sealed := make([]byte, 0, len(ct)+len(tag))
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)
	return aead.Open(nil, iv, sealed, nil)
}

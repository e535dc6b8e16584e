// Package crypto implements the client-side end-to-end encryption envelope of
// slide forms.
//
// Two keys are involved and neither is ever sent to the store:
//
//	ContentKey   AES-256 key from the share link fragment, decrypts question content
//	RecipientKey form owner's public key from the fragment, wraps session keys
//
// Content flow (respondent, on load):
//
//	fragment --KeyLoader--> KeyMaterial
//	EncryptedField --ContentCipher.DecryptField--> plaintext | ErrFieldDecryptionFailed
//
// Submission flow (respondent, on submit):
//
//	AnswerSet --json--> payload
//	sessionKey, iv = random(32), random(12)
//	data, tag      = AES-256-GCM(sessionKey, iv, payload)
//	key            = Wrap(RecipientKey, sessionKey)
//	envelope       = {key, iv, tag, data, alg}
//
// The owner side inverse lives in [EnvelopeOpener].
package crypto

import (
	"io"

	"github.com/MKhiriev/go-slide-form/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// FieldDecryptor decrypts single EncryptedField values with the content key.
type FieldDecryptor interface {
	// DecryptField returns the authenticated plaintext of field or an error
	// wrapping [ErrFieldDecryptionFailed]. It never returns partial plaintext.
	DecryptField(field models.EncryptedField) ([]byte, error)
}

// SubmissionSealer turns an answer set into a [models.SubmissionEnvelope].
type SubmissionSealer interface {
	// EncryptSubmission is all-or-nothing: on any failure it returns an
	// error wrapping [ErrEncryptionFailed] and a zero envelope.
	EncryptSubmission(answers models.AnswerSet) (models.SubmissionEnvelope, error)
}

// KeyWrapper encrypts a session key to the form owner's public key.
type KeyWrapper interface {
	// Scheme names the wrap algorithm, stored in the envelope "alg" field.
	Scheme() Scheme
	// Wrap encrypts key using random as the entropy source.
	Wrap(random io.Reader, key []byte) ([]byte, error)
}

// KeyUnwrapper recovers session keys with the form owner's private key.
type KeyUnwrapper interface {
	Scheme() Scheme
	Unwrap(wrapped []byte) ([]byte, error)
}

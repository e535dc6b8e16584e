// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors of the encryption envelope. Callers match them with
// [errors.Is]; the wrapped detail is meant for logs only.
var (
	// ErrMissingCredentials is returned when the share link fragment lacks the
	// content key or the recipient public key, or either cannot be decoded.
	// The form cannot be used without them.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrFieldDecryptionFailed is returned when one EncryptedField is corrupt
	// or fails authentication. It is recovered per field.
	ErrFieldDecryptionFailed = errors.New("field decryption failed")

	// ErrEncryptionFailed is returned when any step of submission encryption
	// fails. Nothing must be sent in that case.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrEnvelopeOpenFailed is returned on the owner side when a stored
	// envelope cannot be unwrapped or authenticated.
	ErrEnvelopeOpenFailed = errors.New("envelope could not be opened")

	// ErrUnsupportedScheme is returned for an unknown key-wrap scheme name.
	ErrUnsupportedScheme = errors.New("unsupported key wrap scheme")

	// ErrInvalidKey is returned when key bytes cannot be parsed for the
	// selected scheme.
	ErrInvalidKey = errors.New("invalid key")
)

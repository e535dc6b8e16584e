// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedField is a single ciphertext blob stored in place of one plaintext
// value (question text, description, serialized option list, form title).
//
// Wire layout, base64 (standard alphabet):
//
//	IV (12 bytes) || AuthTag (16 bytes) || Ciphertext (N bytes)
//
// The store treats it as an opaque string. An empty EncryptedField means the
// value was never set (e.g. a question without description).
type EncryptedField string

// IsEmpty reports whether the field carries no ciphertext at all.
func (f EncryptedField) IsEmpty() bool {
	return f == ""
}

// String returns the base64 representation of the field.
func (f EncryptedField) String() string {
	return string(f)
}

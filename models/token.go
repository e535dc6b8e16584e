package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT owner token.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// The subject claim carries the form owner identifier.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// OwnerID is the identifier extracted from the "sub" claim.
	OwnerID string `json:"-"`
}

// GetOwnerID returns the owner identifier carried in the "sub" claim.
func (t *Token) GetOwnerID() (string, error) {
	ownerID, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if ownerID == "" {
		return "", errors.New("empty subject in token")
	}

	return ownerID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

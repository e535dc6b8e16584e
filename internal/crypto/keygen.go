// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"io"
	"net/url"

	"golang.org/x/crypto/curve25519"
)

// OwnerKeys is a freshly generated recipient key pair.
type OwnerKeys struct {
	Scheme Scheme
	// PublicKey is what goes into the share link (DER for RSA, raw for X25519).
	PublicKey []byte
	// PrivateKeyPEM is kept by the owner only.
	PrivateKeyPEM []byte
}

// GenerateContentKey returns a random 32-byte content key.
func GenerateContentKey(random io.Reader) ([]byte, error) {
	if random == nil {
		random = rand.Reader
	}
	key := make([]byte, ContentKeySize)
	if _, err := io.ReadFull(random, key); err != nil {
		return nil, fmt.Errorf("generate content key: %w", err)
	}
	return key, nil
}

// GenerateOwnerKeys creates a recipient key pair for scheme. bits is only
// used for RSA and must be at least 2048.
func GenerateOwnerKeys(scheme Scheme, bits int) (OwnerKeys, error) {
	switch scheme {
	case SchemeRSAOAEP256:
		return generateRSAKeys(bits)
	case SchemeX25519SealedBox:
		return generateX25519Keys()
	}
	return OwnerKeys{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
}

func generateRSAKeys(bits int) (OwnerKeys, error) {
	if bits < minRSABits {
		return OwnerKeys{}, fmt.Errorf("%w: RSA key size %d is below %d", ErrInvalidKey, bits, minRSABits)
	}

	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return OwnerKeys{}, fmt.Errorf("generate rsa key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return OwnerKeys{}, fmt.Errorf("marshal public key: %w", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return OwnerKeys{}, fmt.Errorf("marshal private key: %w", err)
	}

	return OwnerKeys{
		Scheme:        SchemeRSAOAEP256,
		PublicKey:     pubDER,
		PrivateKeyPEM: pem.EncodeToMemory(&pem.Block{Type: pemTypePrivateKey, Bytes: privDER}),
	}, nil
}

func generateX25519Keys() (OwnerKeys, error) {
	scalar := make([]byte, x25519KeySize)
	if _, err := io.ReadFull(rand.Reader, scalar); err != nil {
		return OwnerKeys{}, fmt.Errorf("generate x25519 key: %w", err)
	}

	pub, err := curve25519.X25519(scalar, curve25519.Basepoint)
	if err != nil {
		return OwnerKeys{}, fmt.Errorf("derive x25519 public key: %w", err)
	}

	return OwnerKeys{
		Scheme:        SchemeX25519SealedBox,
		PublicKey:     pub,
		PrivateKeyPEM: pem.EncodeToMemory(&pem.Block{Type: pemTypeX25519PrivateKey, Bytes: scalar}),
	}, nil
}

// BuildFragment renders the share link fragment (without "#") for the given
// keys using cfg's parameter names. Values are unpadded URL-safe base64 so
// the link needs no escaping.
func BuildFragment(cfg Config, contentKey, publicKey []byte) string {
	if cfg.ContentKeyParam == "" {
		cfg.ContentKeyParam = DefaultContentKeyParam
	}
	if cfg.PublicKeyParam == "" {
		cfg.PublicKeyParam = DefaultPublicKeyParam
	}

	return url.PathEscape(cfg.ContentKeyParam) + "=" + base64.RawURLEncoding.EncodeToString(contentKey) +
		"&" + url.PathEscape(cfg.PublicKeyParam) + "=" + base64.RawURLEncoding.EncodeToString(publicKey)
}

// BuildShareLink joins a base URL, a form ID and a fragment into the link
// handed to respondents: <base>/form/<id>#<fragment>.
func BuildShareLink(baseURL, formID, fragment string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	u = u.JoinPath("form", formID)
	u.Fragment = ""
	return u.String() + "#" + fragment, nil
}

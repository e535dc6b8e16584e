// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// Scheme names an asymmetric key-wrap algorithm.
type Scheme string

const (
	// SchemeRSAOAEP256 wraps with RSA-OAEP using SHA-256 for both the hash and
	// MGF1. It is the default.
	SchemeRSAOAEP256 Scheme = "RSA-OAEP-256"

	// SchemeX25519SealedBox wraps with a NaCl anonymous sealed box
	// (ephemeral X25519 + XSalsa20-Poly1305) to a raw 32-byte X25519 key.
	SchemeX25519SealedBox Scheme = "X25519-SEALED-BOX"
)

const (
	// minRSABits is the smallest RSA modulus accepted for a recipient key.
	minRSABits = 2048

	x25519KeySize = 32

	pemTypePublicKey        = "PUBLIC KEY"
	pemTypeRSAPublicKey     = "RSA PUBLIC KEY"
	pemTypePrivateKey       = "PRIVATE KEY"
	pemTypeRSAPrivateKey    = "RSA PRIVATE KEY"
	pemTypeX25519PrivateKey = "X25519 PRIVATE KEY"
)

// ParseScheme maps a scheme name to a [Scheme]. The empty string selects
// [SchemeRSAOAEP256] so envelopes written without "alg" stay readable.
func ParseScheme(name string) (Scheme, error) {
	switch Scheme(name) {
	case "", SchemeRSAOAEP256:
		return SchemeRSAOAEP256, nil
	case SchemeX25519SealedBox:
		return SchemeX25519SealedBox, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

// ParsePublicKey builds a [KeyWrapper] for scheme from encoded key bytes.
//
// RSA keys may be PEM text ("PUBLIC KEY" or "RSA PUBLIC KEY") or the raw DER
// of either encoding. X25519 keys are the raw 32 bytes.
func ParsePublicKey(scheme Scheme, raw []byte) (KeyWrapper, error) {
	switch scheme {
	case SchemeRSAOAEP256:
		pub, err := parseRSAPublicKey(raw)
		if err != nil {
			return nil, err
		}
		return &rsaOAEPWrapper{publicKey: pub}, nil
	case SchemeX25519SealedBox:
		if len(raw) != x25519KeySize {
			return nil, fmt.Errorf("%w: x25519 public key must be %d bytes, got %d", ErrInvalidKey, x25519KeySize, len(raw))
		}
		pub := new([x25519KeySize]byte)
		copy(pub[:], raw)
		return &sealedBoxWrapper{publicKey: pub}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
}

// ParsePrivateKey builds a [KeyUnwrapper] for scheme from a PEM-encoded
// private key. RSA accepts PKCS#1 and PKCS#8 blocks, X25519 expects an
// "X25519 PRIVATE KEY" block holding the raw 32-byte scalar.
func ParsePrivateKey(scheme Scheme, pemBytes []byte) (KeyUnwrapper, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}

	switch scheme {
	case SchemeRSAOAEP256:
		priv, err := parseRSAPrivateKey(block)
		if err != nil {
			return nil, err
		}
		return &rsaOAEPUnwrapper{privateKey: priv}, nil
	case SchemeX25519SealedBox:
		if block.Type != pemTypeX25519PrivateKey || len(block.Bytes) != x25519KeySize {
			return nil, fmt.Errorf("%w: expected %q block of %d bytes", ErrInvalidKey, pemTypeX25519PrivateKey, x25519KeySize)
		}
		return newSealedBoxUnwrapper(block.Bytes)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
}

func parseRSAPublicKey(raw []byte) (*rsa.PublicKey, error) {
	der := raw
	if trimmed := bytes.TrimSpace(raw); bytes.HasPrefix(trimmed, []byte("-----BEGIN")) {
		block, _ := pem.Decode(trimmed)
		if block == nil {
			return nil, fmt.Errorf("%w: malformed PEM public key", ErrInvalidKey)
		}
		if block.Type != pemTypePublicKey && block.Type != pemTypeRSAPublicKey {
			return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrInvalidKey, block.Type)
		}
		der = block.Bytes
	}

	var pub *rsa.PublicKey
	if parsed, err := x509.ParsePKIXPublicKey(der); err == nil {
		rsaPub, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key", ErrInvalidKey)
		}
		pub = rsaPub
	} else {
		rsaPub, pkcs1Err := x509.ParsePKCS1PublicKey(der)
		if pkcs1Err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		pub = rsaPub
	}

	if pub.N.BitLen() < minRSABits {
		return nil, fmt.Errorf("%w: RSA key of %d bits is below %d", ErrInvalidKey, pub.N.BitLen(), minRSABits)
	}

	return pub, nil
}

func parseRSAPrivateKey(block *pem.Block) (*rsa.PrivateKey, error) {
	switch block.Type {
	case pemTypeRSAPrivateKey:
		priv, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		return priv, nil
	case pemTypePrivateKey:
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		priv, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA private key", ErrInvalidKey)
		}
		return priv, nil
	}

	return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrInvalidKey, block.Type)
}

type rsaOAEPWrapper struct {
	publicKey *rsa.PublicKey
}

func (w *rsaOAEPWrapper) Scheme() Scheme {
	return SchemeRSAOAEP256
}

func (w *rsaOAEPWrapper) Wrap(random io.Reader, key []byte) ([]byte, error) {
	return rsa.EncryptOAEP(sha256.New(), random, w.publicKey, key, nil)
}

type rsaOAEPUnwrapper struct {
	privateKey *rsa.PrivateKey
}

func (u *rsaOAEPUnwrapper) Scheme() Scheme {
	return SchemeRSAOAEP256
}

func (u *rsaOAEPUnwrapper) Unwrap(wrapped []byte) ([]byte, error) {
	return rsa.DecryptOAEP(sha256.New(), nil, u.privateKey, wrapped, nil)
}

type sealedBoxWrapper struct {
	publicKey *[x25519KeySize]byte
}

func (w *sealedBoxWrapper) Scheme() Scheme {
	return SchemeX25519SealedBox
}

func (w *sealedBoxWrapper) Wrap(random io.Reader, key []byte) ([]byte, error) {
	return box.SealAnonymous(nil, key, w.publicKey, random)
}

type sealedBoxUnwrapper struct {
	publicKey  *[x25519KeySize]byte
	privateKey *[x25519KeySize]byte
}

func newSealedBoxUnwrapper(scalar []byte) (*sealedBoxUnwrapper, error) {
	pubBytes, err := curve25519.X25519(scalar, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	u := &sealedBoxUnwrapper{
		publicKey:  new([x25519KeySize]byte),
		privateKey: new([x25519KeySize]byte),
	}
	copy(u.publicKey[:], pubBytes)
	copy(u.privateKey[:], scalar)

	return u, nil
}

func (u *sealedBoxUnwrapper) Scheme() Scheme {
	return SchemeX25519SealedBox
}

func (u *sealedBoxUnwrapper) Unwrap(wrapped []byte) ([]byte, error) {
	key, ok := box.OpenAnonymous(nil, wrapped, u.publicKey, u.privateKey)
	if !ok {
		return nil, fmt.Errorf("sealed box did not authenticate")
	}
	return key, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Default fragment parameter names of a share link: #q=<content key>&p=<public key>.
const (
	DefaultContentKeyParam = "q"
	DefaultPublicKeyParam  = "p"
)

// KeyMaterial is everything the respondent needs from the share link. It is
// never persisted or sent anywhere.
type KeyMaterial struct {
	// ContentKey is the 32-byte AES-256 key for question content.
	ContentKey []byte
	// Recipient wraps submission session keys to the form owner.
	Recipient KeyWrapper
}

// Config selects the fragment parameter names and the key-wrap scheme used
// for the public key found in the fragment.
type Config struct {
	ContentKeyParam string
	PublicKeyParam  string
	Scheme          Scheme
}

// DefaultConfig returns the "q"/"p" parameter names with RSA-OAEP-256.
func DefaultConfig() Config {
	return Config{
		ContentKeyParam: DefaultContentKeyParam,
		PublicKeyParam:  DefaultPublicKeyParam,
		Scheme:          SchemeRSAOAEP256,
	}
}

// KeyLoader extracts [KeyMaterial] from share link fragments.
type KeyLoader struct {
	cfg Config
}

// NewKeyLoader returns a [KeyLoader]. Empty fields of cfg fall back to
// [DefaultConfig].
func NewKeyLoader(cfg Config) *KeyLoader {
	def := DefaultConfig()
	if cfg.ContentKeyParam == "" {
		cfg.ContentKeyParam = def.ContentKeyParam
	}
	if cfg.PublicKeyParam == "" {
		cfg.PublicKeyParam = def.PublicKeyParam
	}
	if cfg.Scheme == "" {
		cfg.Scheme = def.Scheme
	}
	return &KeyLoader{cfg: cfg}
}

// Load parses carrier, which may be a bare fragment ("q=..&p=.."), a fragment
// with its leading "#", or a full share URL. Every failure is reported as
// [ErrMissingCredentials].
func (l *KeyLoader) Load(carrier string) (KeyMaterial, error) {
	params := ParseFragment(carrier)

	rawKey, ok := params[l.cfg.ContentKeyParam]
	if !ok || rawKey == "" {
		return KeyMaterial{}, fmt.Errorf("%w: parameter %q is absent", ErrMissingCredentials, l.cfg.ContentKeyParam)
	}
	rawPub, ok := params[l.cfg.PublicKeyParam]
	if !ok || rawPub == "" {
		return KeyMaterial{}, fmt.Errorf("%w: parameter %q is absent", ErrMissingCredentials, l.cfg.PublicKeyParam)
	}

	contentKey, err := DecodeBase64(rawKey)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: content key: %w", ErrMissingCredentials, err)
	}
	if len(contentKey) != ContentKeySize {
		return KeyMaterial{}, fmt.Errorf("%w: content key must be %d bytes, got %d", ErrMissingCredentials, ContentKeySize, len(contentKey))
	}

	pubBytes, err := DecodeBase64(rawPub)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: public key: %w", ErrMissingCredentials, err)
	}
	recipient, err := ParsePublicKey(l.cfg.Scheme, pubBytes)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("%w: public key: %w", ErrMissingCredentials, err)
	}

	return KeyMaterial{ContentKey: contentKey, Recipient: recipient}, nil
}

// ParseFragment splits a fragment into its parameters. A leading URL up to
// and including "#" is dropped. Values are percent-unescaped but "+" is kept
// as is, since base64 uses it. The first occurrence of a name wins.
func ParseFragment(carrier string) map[string]string {
	fragment := carrier
	if i := strings.IndexByte(fragment, '#'); i >= 0 {
		fragment = fragment[i+1:]
	}

	params := make(map[string]string)
	for _, pair := range strings.Split(fragment, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		if unescaped, err := url.PathUnescape(value); err == nil {
			value = unescaped
		}
		if _, seen := params[name]; !seen {
			params[name] = value
		}
	}

	return params
}

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// DecodeBase64 accepts the standard and URL-safe alphabets, padded or not.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty base64 value")
	}

	var firstErr error
	for _, enc := range base64Encodings {
		decoded, err := enc.DecodeString(s)
		if err == nil {
			return decoded, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, fmt.Errorf("decode base64: %w", firstErr)
}

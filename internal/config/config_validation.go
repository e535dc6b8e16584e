// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

const (
	defaultRequestTimeout  = 10 * time.Second
	defaultContentKeyParam = "q"
	defaultPublicKeyParam  = "p"
	defaultScheme          = "RSA-OAEP-256"
	defaultVaultField      = "private_key"
)

var knownSchemes = map[string]struct{}{
	"RSA-OAEP-256":      {},
	"X25519-SEALED-BOX": {},
}

// validate checks the format of values that are set. Missing values are
// checked by the binary-specific views ([ServerConfig], [ClientConfig]).
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.Scheme != "" {
		if _, ok := knownSchemes[cfg.Crypto.Scheme]; !ok {
			return ErrInvalidCryptoConfigs
		}
	}

	if cfg.Storage.DB.DSN != "" && DBDialect(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Crypto.ContentKeyParam != "" && cfg.Crypto.ContentKeyParam == cfg.Crypto.PublicKeyParam {
		return ErrInvalidCryptoConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RetryMaxElapsed < 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, ok := knownSchemes[cfg.Crypto.Scheme]; !ok {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Crypto.ContentKeyParam == cfg.Crypto.PublicKeyParam {
		return ErrInvalidCryptoConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// DBDialect maps a DSN to the goose/sql driver dialect: "pgx" for
// PostgreSQL and "sqlite3" for SQLite. It returns "" for unknown schemes.
func DBDialect(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return "pgx"
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"),
		strings.HasSuffix(dsn, ".db"), dsn == ":memory:":
		return "sqlite3"
	}
	return ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-slide-form binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings of the form store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the runner and the owner CLI use to reach
	// the form store.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Crypto holds share link parameter names, the key-wrap scheme and the
	// location of the owner's private key.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Cache holds the server-side question cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify owner JWT
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an owner token remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP API, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by scheme: "postgres://..." for PostgreSQL,
	// "sqlite://path", "file:path" or a "*.db" path for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds outbound settings for the form store client.
type Adapter struct {
	// HTTPAddress is the base URL of the form store
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryMaxElapsed bounds the total time spent retrying a response insert
	// on retryable store errors. Zero disables retries.
	// Env: ADAPTER_RETRY_MAX_ELAPSED
	RetryMaxElapsed time.Duration `env:"RETRY_MAX_ELAPSED"`

	// Token is the owner bearer token used by publish and response listing.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Crypto holds key handling settings shared by the runner and the owner CLI.
type Crypto struct {
	// ContentKeyParam is the fragment parameter carrying the content key.
	// Env: CRYPTO_CONTENT_KEY_PARAM
	ContentKeyParam string `env:"CONTENT_KEY_PARAM"`

	// PublicKeyParam is the fragment parameter carrying the owner public key.
	// Env: CRYPTO_PUBLIC_KEY_PARAM
	PublicKeyParam string `env:"PUBLIC_KEY_PARAM"`

	// Scheme names the key-wrap scheme ("RSA-OAEP-256" or
	// "X25519-SEALED-BOX").
	// Env: CRYPTO_SCHEME
	Scheme string `env:"SCHEME"`

	// PrivateKeyFile is the PEM file holding the owner's private key.
	// Env: CRYPTO_PRIVATE_KEY_FILE
	PrivateKeyFile string `env:"PRIVATE_KEY_FILE"`

	// VaultPath is a Vault KV path holding the private key PEM, used instead
	// of PrivateKeyFile when set. The Vault client itself reads VAULT_ADDR
	// and VAULT_TOKEN.
	// Env: CRYPTO_VAULT_PATH
	VaultPath string `env:"VAULT_PATH"`

	// VaultField is the key inside the Vault secret. Defaults to
	// "private_key".
	// Env: CRYPTO_VAULT_FIELD
	VaultField string `env:"VAULT_FIELD"`
}

// Cache holds in-memory cache settings of the form store.
type Cache struct {
	// QuestionsTTL is how long a form's question list is served from memory.
	// Zero disables the cache.
	// Env: CACHE_QUESTIONS_TTL
	QuestionsTTL time.Duration `env:"QUESTIONS_TTL"`

	// CleanupInterval is how often expired entries are purged.
	// Env: CACHE_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// LoadStructuredConfig is [GetStructuredConfig] without command-line flag
// parsing, for binaries that own their flag set. jsonPath, when non-empty,
// overrides the CONFIG environment variable. Non-zero fields of overrides
// win over every other source.
func LoadStructuredConfig(jsonPath string, overrides ...*StructuredConfig) (*StructuredConfig, error) {
	b := newConfigBuilder().withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}
	b = b.withJSON()
	for _, o := range overrides {
		if o != nil {
			b.configs = append(b.configs, o)
		}
	}
	return b.build()
}

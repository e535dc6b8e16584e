package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the form store.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryMaxElapsed bounds response insert retries. Zero disables them.
	RetryMaxElapsed time.Duration
	// Token is the owner bearer token, empty for respondents.
	Token string
}

// ClientCrypto holds key handling settings of the client.
type ClientCrypto struct {
	ContentKeyParam string
	PublicKeyParam  string
	Scheme          string
	PrivateKeyFile  string
	VaultPath       string
	VaultField      string
}

// ClientConfig is the top-level configuration of the runner and the owner
// CLI, assembled from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains form store address, timeouts and credentials.
	Adapter ClientAdapter
	// Crypto contains share link and key settings.
	Crypto ClientCrypto
	// App carries token settings used by the owner CLI to mint tokens.
	App App
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration, including command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// LoadClientConfig is [GetClientConfig] for binaries that parse their own
// flags. jsonPath is optional; overrides carry the binary's own flags.
func LoadClientConfig(jsonPath string, overrides ...*StructuredConfig) (*ClientConfig, error) {
	cfg, err := LoadStructuredConfig(jsonPath, overrides...)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			RetryMaxElapsed: cfg.Adapter.RetryMaxElapsed,
			Token:           cfg.Adapter.Token,
		},
		Crypto: ClientCrypto{
			ContentKeyParam: cfg.Crypto.ContentKeyParam,
			PublicKeyParam:  cfg.Crypto.PublicKeyParam,
			Scheme:          cfg.Crypto.Scheme,
			PrivateKeyFile:  cfg.Crypto.PrivateKeyFile,
			VaultPath:       cfg.Crypto.VaultPath,
			VaultField:      cfg.Crypto.VaultField,
		},
		App: cfg.App,
	}
	clientCfg.setDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) setDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Crypto.ContentKeyParam == "" {
		cfg.Crypto.ContentKeyParam = defaultContentKeyParam
	}
	if cfg.Crypto.PublicKeyParam == "" {
		cfg.Crypto.PublicKeyParam = defaultPublicKeyParam
	}
	if cfg.Crypto.Scheme == "" {
		cfg.Crypto.Scheme = defaultScheme
	}
	if cfg.Crypto.VaultField == "" {
		cfg.Crypto.VaultField = defaultVaultField
	}
}

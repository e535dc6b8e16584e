package owner

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	vault "github.com/hashicorp/vault/api"
)

const defaultVaultField = "private_key"

// KeySource returns the PEM encoded private key of the form owner.
type KeySource interface {
	PrivateKeyPEM(ctx context.Context) ([]byte, error)
}

// NewKeySource selects Vault when a Vault path is configured and the key file
// otherwise. The Vault client reads VAULT_ADDR and VAULT_TOKEN itself.
func NewKeySource(cfg config.ClientCrypto) (KeySource, error) {
	switch {
	case cfg.VaultPath != "":
		client, err := vault.NewClient(vault.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("create vault client: %w", err)
		}
		return NewVaultKeySource(client.Logical(), cfg.VaultPath, cfg.VaultField), nil
	case cfg.PrivateKeyFile != "":
		return FileKeySource{Path: cfg.PrivateKeyFile}, nil
	}
	return nil, ErrNoKeySource
}

// LoadUnwrapper fetches the private key from src and parses it for scheme.
func LoadUnwrapper(ctx context.Context, src KeySource, scheme crypto.Scheme) (crypto.KeyUnwrapper, error) {
	pemBytes, err := src.PrivateKeyPEM(ctx)
	if err != nil {
		return nil, err
	}

	unwrapper, err := crypto.ParsePrivateKey(scheme, pemBytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return unwrapper, nil
}

// FileKeySource reads the key from a local PEM file.
type FileKeySource struct {
	Path string
}

func (f FileKeySource) PrivateKeyPEM(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read private key file: %w", err)
	}
	return data, nil
}

// WritePrivateKey stores pemBytes readable by the owner only. An existing
// file is never overwritten.
func WritePrivateKey(path string, pemBytes []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create private key file: %w", err)
	}
	if _, err = f.Write(pemBytes); err != nil {
		_ = f.Close()
		return fmt.Errorf("write private key file: %w", err)
	}
	return f.Close()
}

// vaultReader is the part of *vault.Logical used here.
type vaultReader interface {
	ReadWithContext(ctx context.Context, path string) (*vault.Secret, error)
}

// VaultKeySource reads the key from a Vault KV secret. Both KV v1 and KV v2
// ("<mount>/data/<path>") layouts are understood.
type VaultKeySource struct {
	logical vaultReader
	path    string
	field   string
}

func NewVaultKeySource(logical vaultReader, path, field string) *VaultKeySource {
	if field == "" {
		field = defaultVaultField
	}
	return &VaultKeySource{
		logical: logical,
		path:    strings.Trim(path, "/"),
		field:   field,
	}
}

func (v *VaultKeySource) PrivateKeyPEM(ctx context.Context) ([]byte, error) {
	secret, err := v.logical.ReadWithContext(ctx, v.path)
	if err != nil {
		return nil, fmt.Errorf("read vault secret %q: %w", v.path, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("%w: no secret at %q", ErrPrivateKeyNotFound, v.path)
	}

	data := secret.Data
	// KV v2 nests the payload under "data"
	if nested, ok := data["data"].(map[string]any); ok {
		data = nested
	}

	value, ok := data[v.field].(string)
	if !ok || value == "" {
		return nil, fmt.Errorf("%w: field %q missing in %q", ErrPrivateKeyNotFound, v.field, v.path)
	}
	return []byte(value), nil
}

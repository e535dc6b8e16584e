// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFileVars name "_FILE" variables that point at a file holding a
// secret. They only apply when the plain variable is unset.
var secretFileVars = []struct {
	name string
	dst  func(cfg *StructuredConfig) *string
}{
	{"APP_TOKEN_SIGN_KEY_FILE", func(cfg *StructuredConfig) *string { return &cfg.App.TokenSignKey }},
	{"ADAPTER_TOKEN_FILE", func(cfg *StructuredConfig) *string { return &cfg.Adapter.Token }},
}

// parseEnv fills cfg from the `env` and `envPrefix` tags of
// [StructuredConfig], then resolves the secret file variables.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	for _, secret := range secretFileVars {
		dst := secret.dst(cfg)
		path := os.Getenv(secret.name)
		if *dst != "" || path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", secret.name, err)
		}
		*dst = strings.TrimSpace(string(data))
	}

	return nil
}

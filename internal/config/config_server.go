package config

import (
	"fmt"
	"time"
)

// ServerConfig is the form store view of [StructuredConfig] with defaults
// applied.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Cache   Cache
}

const (
	defaultServerRequestTimeout = 30 * time.Second
	defaultCleanupInterval      = 10 * time.Minute
)

// GetServerConfig loads the structured configuration and returns the server
// view of it.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Cache:   cfg.Cache,
	}

	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = defaultServerRequestTimeout
	}
	if serverCfg.Cache.CleanupInterval == 0 {
		serverCfg.Cache.CleanupInterval = defaultCleanupInterval
	}

	return serverCfg, serverCfg.validate()
}

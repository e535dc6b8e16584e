package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		RetryMaxElapsed Duration `json:"retry_max_elapsed"`
		Token           string   `json:"token"`
	} `json:"adapter,omitempty"`

	Crypto struct {
		ContentKeyParam string `json:"content_key_param"`
		PublicKeyParam  string `json:"public_key_param"`
		Scheme          string `json:"scheme"`
		PrivateKeyFile  string `json:"private_key_file"`
		VaultPath       string `json:"vault_path"`
		VaultField      string `json:"vault_field"`
	} `json:"crypto,omitempty"`

	Cache struct {
		QuestionsTTL    Duration `json:"questions_ttl"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"cache,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryMaxElapsed: time.Duration(jsonCfg.Adapter.RetryMaxElapsed),
			Token:           jsonCfg.Adapter.Token,
		},
		Crypto: Crypto{
			ContentKeyParam: jsonCfg.Crypto.ContentKeyParam,
			PublicKeyParam:  jsonCfg.Crypto.PublicKeyParam,
			Scheme:          jsonCfg.Crypto.Scheme,
			PrivateKeyFile:  jsonCfg.Crypto.PrivateKeyFile,
			VaultPath:       jsonCfg.Crypto.VaultPath,
			VaultField:      jsonCfg.Crypto.VaultField,
		},
		Cache: Cache{
			QuestionsTTL:    time.Duration(jsonCfg.Cache.QuestionsTTL),
			CleanupInterval: time.Duration(jsonCfg.Cache.CleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

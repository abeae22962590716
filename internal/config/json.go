package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags and
// human-readable durations ("1h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey             string   `json:"token_sign_key"`
		TokenIssuer              string   `json:"token_issuer"`
		TokenDuration            Duration `json:"token_duration"`
		SearchHashKey            string   `json:"search_hash_key"`
		ExpirationOptionsSeconds []int64  `json:"expiration_options_seconds"`
		Version                  string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Keys struct {
			Path       string `json:"path"`
			Passphrase string `json:"passphrase"`
			Salt       string `json:"salt"`
		} `json:"keys,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Upload struct {
		AllowedMimeTypes  []string `json:"allowed_mime_types"`
		MaxFileSizeBytes  int64    `json:"max_file_size_bytes"`
		UnknownScanPolicy string   `json:"unknown_scan_policy"`
	} `json:"upload,omitempty"`

	Scanner struct {
		URL     string   `json:"url"`
		Timeout Duration `json:"timeout"`
	} `json:"scanner,omitempty"`

	Workers struct {
		PurgeInterval Duration `json:"purge_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:             jsonCfg.App.TokenSignKey,
			TokenIssuer:              jsonCfg.App.TokenIssuer,
			TokenDuration:            time.Duration(jsonCfg.App.TokenDuration),
			SearchHashKey:            jsonCfg.App.SearchHashKey,
			ExpirationOptionsSeconds: jsonCfg.App.ExpirationOptionsSeconds,
			Version:                  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Keys: Keys{
				Path:       jsonCfg.Storage.Keys.Path,
				Passphrase: jsonCfg.Storage.Keys.Passphrase,
				Salt:       jsonCfg.Storage.Keys.Salt,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Upload: Upload{
			AllowedMimeTypes:  jsonCfg.Upload.AllowedMimeTypes,
			MaxFileSizeBytes:  jsonCfg.Upload.MaxFileSizeBytes,
			UnknownScanPolicy: jsonCfg.Upload.UnknownScanPolicy,
		},
		Scanner: Scanner{
			URL:     jsonCfg.Scanner.URL,
			Timeout: time.Duration(jsonCfg.Scanner.Timeout),
		},
		Workers: Workers{
			PurgeInterval: time.Duration(jsonCfg.Workers.PurgeInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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

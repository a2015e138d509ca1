package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations written as strings like "30s".
type StructuredJSONConfig struct {
	App struct {
		BcryptCost int    `json:"bcrypt_cost"`
		LogLevel   string `json:"log_level"`
		Version    string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN  string `json:"dsn"`
			Name string `json:"name"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RateLimit       struct {
			RequestsPerMinute int `json:"auth_rpm"`
			Burst             int `json:"auth_burst"`
		} `json:"rate_limit,omitempty"`
	} `json:"server,omitempty"`

	Workers struct {
		Hashers int `json:"hashers"`
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
			BcryptCost: jsonCfg.App.BcryptCost,
			LogLevel:   jsonCfg.App.LogLevel,
			Version:    jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:  jsonCfg.Storage.DB.DSN,
				Name: jsonCfg.Storage.DB.Name,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimit: RateLimit{
				RequestsPerMinute: jsonCfg.Server.RateLimit.RequestsPerMinute,
				Burst:             jsonCfg.Server.RateLimit.Burst,
			},
		},
		Workers: Workers{
			Hashers: jsonCfg.Workers.Hashers,
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

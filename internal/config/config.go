package config

import (
	"encoding/json"
	"os"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	GRPCAddr  string `json:"grpcAddr"`
	HTTPAddr  string `json:"httpAddr"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns built-in defaults. The gRPC port matches the historical
// directord driver default.
func Default() Config {
	return Config{
		GRPCAddr:  ":5558",
		HTTPAddr:  ":5580",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON file, overlaying defaults. If path is
// empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package config

import "os"

// FromEnv overlays DIRECTORD_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("DIRECTORD_GRPC_ADDR"); v != "" {
		cfg.GRPCAddr = v
	}
	if v := os.Getenv("DIRECTORD_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("DIRECTORD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DIRECTORD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

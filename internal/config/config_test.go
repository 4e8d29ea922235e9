package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.GRPCAddr != ":5558" {
		t.Fatalf("default grpc addr: %s", cfg.GRPCAddr)
	}
	if cfg.HTTPAddr != ":5580" {
		t.Fatalf("default http addr: %s", cfg.HTTPAddr)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("default logging: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "directord.json")
	data := []byte(`{"grpcAddr":"127.0.0.1:6000","logLevel":"debug"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GRPCAddr != "127.0.0.1:6000" {
		t.Fatalf("grpc addr: %s", cfg.GRPCAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level: %s", cfg.LogLevel)
	}
	// unset fields keep defaults
	if cfg.HTTPAddr != ":5580" {
		t.Fatalf("http addr overlay: %s", cfg.HTTPAddr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/directord.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DIRECTORD_GRPC_ADDR", "0.0.0.0:7000")
	t.Setenv("DIRECTORD_LOG_FORMAT", "json")
	cfg := Default()
	FromEnv(&cfg)
	if cfg.GRPCAddr != "0.0.0.0:7000" {
		t.Fatalf("env grpc addr: %s", cfg.GRPCAddr)
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("env log format: %s", cfg.LogFormat)
	}
	if cfg.HTTPAddr != ":5580" {
		t.Fatalf("untouched http addr: %s", cfg.HTTPAddr)
	}
}

// Package config provides loading and environment overlay for directord
// server configuration.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/directord.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config

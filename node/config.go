// Package node holds the simulator's ambient infrastructure: configuration,
// the session-trace store, and safe fixture-file loading. None of it is
// part of the signing device itself (that's signcore/apdu/crypto) — it's
// the harness that drives a Dispatcher from the command line.
package node

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the simulator's runtime configuration: which network's
// generation hash to treat as active, where to keep its data, and how
// verbosely to log.
type Config struct {
	Network    string `json:"network"`
	DataDir    string `json:"data_dir"`
	LogLevel   string `json:"log_level"`
	TracePath  string `json:"trace_path"`
	KeystorePath string `json:"keystore_path"`
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var allowedNetworks = map[string]struct{}{
	"mainnet": {},
	"testnet": {},
}

func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".xym-sign-sim"
	}
	return filepath.Join(home, ".xym-sign-sim")
}

func DefaultConfig() Config {
	dir := DefaultDataDir()
	return Config{
		Network:      "testnet",
		DataDir:      dir,
		LogLevel:     "info",
		TracePath:    filepath.Join(dir, "sessions.bolt"),
		KeystorePath: filepath.Join(dir, "keystore.json"),
	}
}

func ValidateConfig(cfg Config) error {
	network := strings.ToLower(strings.TrimSpace(cfg.Network))
	if _, ok := allowedNetworks[network]; !ok {
		return fmt.Errorf("invalid network %q (want mainnet or testnet)", cfg.Network)
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	logLevel := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, ok := allowedLogLevels[logLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if strings.TrimSpace(cfg.TracePath) == "" {
		return errors.New("trace_path is required")
	}
	return nil
}

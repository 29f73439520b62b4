package node

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := ValidateConfig(DefaultConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateConfigRejectsBadNetwork(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Network = "regtest"
	if err := ValidateConfig(cfg); err == nil {
		t.Fatalf("expected error for unknown network")
	}
}

func TestValidateConfigRejectsEmptyDataDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "  "
	if err := ValidateConfig(cfg); err == nil {
		t.Fatalf("expected error for empty data_dir")
	}
}

func TestValidateConfigRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	if err := ValidateConfig(cfg); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestValidateConfigRejectsEmptyTracePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TracePath = ""
	if err := ValidateConfig(cfg); err == nil {
		t.Fatalf("expected error for empty trace_path")
	}
}

func TestValidateConfigIsCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Network = "MAINNET"
	cfg.LogLevel = "DEBUG"
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("expected case-insensitive network/log_level to validate: %v", err)
	}
}

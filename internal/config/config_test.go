package config_test

import (
	"testing"

	"chat-server/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServiceName != "chat-api" {
		t.Errorf("ServiceName = %q, want chat-api", cfg.ServiceName)
	}
	if cfg.HTTPPort != 3000 {
		t.Errorf("HTTPPort = %d, want 3000", cfg.HTTPPort)
	}
	if cfg.Addr() != ":3000" {
		t.Errorf("Addr() = %q, want :3000", cfg.Addr())
	}
	if cfg.DatabasePath != "chat.db" {
		t.Errorf("DatabasePath = %q, want chat.db", cfg.DatabasePath)
	}
	if cfg.SendBufferSize != 64 {
		t.Errorf("SendBufferSize = %d, want 64", cfg.SendBufferSize)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHAT_API_PORT", "8080")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("DatabasePath = %q, want empty to select memory stores", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-positive upload limit", "UPLOAD_MAX_BYTES", "0"},
		{"non-positive send buffer", "WS_SEND_BUFFER_SIZE", "-1"},
		{"blank upload dir", "UPLOAD_DIR", "  "},
		{"unparsable port", "CHAT_API_PORT", "not-a-port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := config.Load(); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

package scoring

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BaseURL != "http://localhost:8465" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %s, want 15s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WORDWAVE_SERVER_URL", "https://academy.example.com")
	t.Setenv("WORDWAVE_SERVER_TIMEOUT", "30s")

	cfg := ConfigFromEnv()
	if cfg.BaseURL != "https://academy.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
}

func TestConfigFromEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("WORDWAVE_SERVER_TIMEOUT", "not-a-duration")

	if cfg := ConfigFromEnv(); cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %s, want default 15s", cfg.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "http://localhost:8465", Timeout: time.Second}, false},
		{"https", Config{BaseURL: "https://academy.example.com", Timeout: time.Second}, false},
		{"empty URL", Config{Timeout: time.Second}, true},
		{"bad scheme", Config{BaseURL: "ftp://x", Timeout: time.Second}, true},
		{"zero timeout", Config{BaseURL: "http://x"}, true},
		{"negative timeout", Config{BaseURL: "http://x", Timeout: -time.Second}, true},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

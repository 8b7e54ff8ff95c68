package config

import (
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
		{"uses default for negative", "TEST_INT_4", "-5", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "UPSTAGE_API_KEY", "MAX_BODY_BYTES", "LOG_LEVEL", "LOG_FILE", "FRONTEND_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("Expected default body limit 1MiB, got %d", cfg.MaxBodyBytes)
	}
	if cfg.FrontendURL != "*" {
		t.Errorf("Expected wildcard CORS origin, got %q", cfg.FrontendURL)
	}
	if cfg.UpstageAPIKey != "" {
		t.Errorf("Expected no credential, got %q", cfg.UpstageAPIKey)
	}
}

func TestLoad_WithCredential(t *testing.T) {
	t.Setenv("UPSTAGE_API_KEY", "up-123")
	t.Setenv("PORT", "9090")

	cfg := Load()

	if cfg.UpstageAPIKey != "up-123" {
		t.Errorf("Expected credential to be loaded, got %q", cfg.UpstageAPIKey)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Port)
	}
}

package config

import (
	"os"
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
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal bool
		expected   bool
	}{
		{"parses true", "TEST_BOOL_1", "true", false, true},
		{"parses 1", "TEST_BOOL_2", "1", false, true},
		{"parses false", "TEST_BOOL_3", "false", true, false},
		{"uses default for empty", "TEST_BOOL_4", "", true, true},
		{"uses default for garbage", "TEST_BOOL_5", "yes please", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsBoolOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, result)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-key")
	defer os.Unsetenv("GEMINI_API_KEY")
	os.Unsetenv("PORT")
	os.Unsetenv("ALLOWED_ORIGIN")
	os.Unsetenv("CHAT_INCLUDE_HISTORY")
	os.Unsetenv("CONTACT_EMAIL")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.AllowedOrigin != DefaultAllowedOrigin {
		t.Errorf("Expected default allowed origin %q, got %q", DefaultAllowedOrigin, cfg.AllowedOrigin)
	}
	if cfg.ChatIncludeHistory {
		t.Error("Expected history mode disabled by default")
	}
	if cfg.ContactEmail != "miliayalew@gmail.com" {
		t.Errorf("Unexpected contact recipient %q", cfg.ContactEmail)
	}
}

func TestMustGetEnvPanics(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VAR")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required variable")
		}
	}()

	mustGetEnv("TEST_REQUIRED_VAR")
}

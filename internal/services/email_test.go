package services

import (
	"testing"
)

func TestNewEmailServiceDevMode(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		user    string
		devMode bool
	}{
		{"no host", "", "user@example.com", true},
		{"no user", "smtp.example.com", "", true},
		{"fully configured", "smtp.example.com", "user@example.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewEmailService(tc.host, "587", tc.user, "pass", "from@example.com")
			if s.devMode != tc.devMode {
				t.Errorf("Expected devMode=%v, got %v", tc.devMode, s.devMode)
			}
		})
	}
}

func TestSendContactEmailDevMode(t *testing.T) {
	s := NewEmailService("", "", "", "", "noreply@example.com")

	// Dev mode logs instead of dialing SMTP; must not error.
	err := s.SendContactEmail("owner@example.com", "Jane Doe", "jane@example.com", "Hello", "I'd like to work with you.")
	if err != nil {
		t.Errorf("Expected nil error in dev mode, got %v", err)
	}
}

func TestSendContactEmailDefaultSubject(t *testing.T) {
	s := NewEmailService("", "", "", "", "noreply@example.com")

	// Empty subject falls back to the fixed default; still succeeds in dev mode.
	if err := s.SendContactEmail("owner@example.com", "Jane", "jane@example.com", "", "hi"); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

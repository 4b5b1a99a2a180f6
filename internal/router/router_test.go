package router

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type cannedStream struct {
	chunks []string
}

func (s *cannedStream) Next() (string, error) {
	if len(s.chunks) == 0 {
		return "", io.EOF
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, nil
}

type cannedStreamer struct {
	chunks []string
}

func (s *cannedStreamer) StreamAnswer(ctx context.Context, messages []models.ChatMessage) (services.AnswerStream, error) {
	return &cannedStream{chunks: s.chunks}, nil
}

type noopSender struct{}

func (noopSender) SendContactEmail(to, name, email, subject, message string) error { return nil }

func testRouter() http.Handler {
	chatHandler := handlers.NewChatHandler(&cannedStreamer{chunks: []string{"hello"}})
	contactHandler := handlers.NewContactHandler(noopSender{}, "owner@example.com")
	return New(chatHandler, contactHandler, config.DefaultAllowedOrigin)
}

func TestPreflightChat(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200 for preflight, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("Expected empty preflight body, got %q", rr.Body.String())
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != config.DefaultAllowedOrigin {
		t.Errorf("Expected default origin %q, got %q", config.DefaultAllowedOrigin, got)
	}
}

func TestChatResponseCarriesFixedOrigin(t *testing.T) {
	r := testRouter()

	// Arbitrary origins are never reflected; only the configured value is
	// emitted.
	for _, origin := range []string{"https://example.com", "https://another.example"} {
		req := httptest.NewRequest(http.MethodPost, "/api/chat",
			bytes.NewReader([]byte(`{"messages":[{"role":"user","content":"hi"}]}`)))
		req.Header.Set("Origin", origin)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rr.Code)
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != config.DefaultAllowedOrigin {
			t.Errorf("Origin %q: expected %q, got %q", origin, config.DefaultAllowedOrigin, got)
		}
		if got := rr.Body.String(); got != "hello" {
			t.Errorf("Expected streamed body %q, got %q", "hello", got)
		}
	}
}

func TestErrorResponseCarriesCORSHeaders(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{"messages":[]}`)))
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != config.DefaultAllowedOrigin {
		t.Errorf("Expected CORS headers on the error path, got %q", got)
	}
}

func TestHealth(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != `{"status":"ok"}` {
		t.Errorf("Unexpected health body %q", rr.Body.String())
	}
}

func TestContactRoute(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		bytes.NewReader([]byte(`{"name":"Jane","email":"jane@example.com","message":"hi"}`)))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rr.Code)
	}
}

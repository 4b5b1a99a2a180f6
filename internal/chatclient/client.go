// Package chatclient owns the conversation transcript for a chat session
// and consumes the relay's streamed responses incrementally. One submission
// may be in flight at a time; while busy, new submissions are rejected.
package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"portfolio-backend/internal/models"
)

// State is the client's position in the submission lifecycle.
type State int

const (
	StateIdle State = iota
	StateSending
	StateStreaming
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the transcript. The trailing assistant message
// grows in place while a stream is in flight; everything else is
// append-only.
type Message struct {
	ID      string
	Role    string
	Content string
}

var (
	// ErrEmptyInput is returned when the submitted text is empty or
	// whitespace-only. No message is created and no request is issued.
	ErrEmptyInput = errors.New("chatclient: empty input")

	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("chatclient: submission already in flight")
)

// Client is the chat state machine. Transcript state lives only in memory
// for the lifetime of the client; nothing is persisted.
type Client struct {
	endpoint   string
	httpClient *http.Client

	// OnChunk, if set, is called for every appended chunk with the
	// assistant message ID and the chunk text. Called from the goroutine
	// running Submit.
	OnChunk func(messageID, chunk string)

	mu       sync.Mutex
	state    State
	messages []Message
	lastErr  error
}

// New returns a client that talks to the given chat endpoint.
func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
	}
}

// NewWithHTTPClient allows substituting the transport, mainly for tests.
func NewWithHTTPClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error recorded by the most recent failed submission, if
// any. It is display-only and cleared on the next submission.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Messages returns a copy of the transcript.
func (c *Client) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Submit sends one user turn and blocks until the response stream ends.
// Whitespace-only input and submissions while busy are rejected without
// side effects. Cancelling ctx aborts the in-flight request.
func (c *Client) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInput
	}

	c.mu.Lock()
	if c.state == StateSending || c.state == StateStreaming {
		c.mu.Unlock()
		return ErrBusy
	}
	c.lastErr = nil
	c.state = StateSending
	c.messages = append(c.messages, Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: text,
	})
	history := make([]models.ChatMessage, len(c.messages))
	for i, m := range c.messages {
		history[i] = models.ChatMessage{Role: m.Role, Content: m.Content}
	}
	c.mu.Unlock()

	if err := c.stream(ctx, history); err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.state = StateFailed
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()
	return nil
}

func (c *Client) stream(ctx context.Context, history []models.ChatMessage) error {
	body, err := json.Marshal(models.ChatRequest{Messages: history})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("chat request failed: status %d", resp.StatusCode)
	}

	var (
		assistantID string
		content     strings.Builder
		buf         = make([]byte, 4096)
	)

	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			content.WriteString(chunk)

			c.mu.Lock()
			if assistantID == "" {
				// First received bytes: open the assistant turn.
				assistantID = uuid.NewString()
				c.state = StateStreaming
				c.messages = append(c.messages, Message{
					ID:   assistantID,
					Role: RoleAssistant,
				})
			}
			c.setContentLocked(assistantID, content.String())
			c.mu.Unlock()

			if c.OnChunk != nil {
				c.OnChunk(assistantID, chunk)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read stream: %w", readErr)
		}
	}
}

// setContentLocked replaces the content of the message with the given ID.
// Chunks target the assistant message by its stable ID, never by position.
func (c *Client) setContentLocked(id, content string) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Content = content
			return
		}
	}
}

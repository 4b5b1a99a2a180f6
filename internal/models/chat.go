package models

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. The full history
// is sent on every turn; the last element is the active user message.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ErrorResponse is the JSON body returned when a request fails before
// any streaming has started.
type ErrorResponse struct {
	Error string `json:"error"`
}

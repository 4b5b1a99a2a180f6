package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type answerStreamer interface {
	StreamAnswer(ctx context.Context, messages []models.ChatMessage) (services.AnswerStream, error)
}

type ChatHandler struct {
	streamer answerStreamer
}

func NewChatHandler(streamer answerStreamer) *ChatHandler {
	return &ChatHandler{streamer: streamer}
}

// Ask relays the conversation to the upstream model and streams the answer
// back as plain text, chunk by chunk. Nothing is buffered server-side; the
// first upstream chunk is pulled before headers are written so pre-stream
// failures still produce a JSON error body.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Messages must not be empty"})
		return
	}

	last := req.Messages[len(req.Messages)-1]
	if strings.TrimSpace(last.Content) == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Message is required"})
		return
	}

	stream, err := h.streamer.StreamAnswer(r.Context(), req.Messages)
	if err != nil {
		log.Printf("Chat API error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process chat request"})
		return
	}

	// Pull until the first non-empty chunk so an immediate upstream failure
	// can still be reported as JSON.
	var first string
	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("Chat API error: %v", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process chat request"})
			return
		}
		if chunk != "" {
			first = chunk
			break
		}
	}

	flusher, _ := w.(http.Flusher)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if first == "" {
		// Upstream completed without emitting any text.
		return
	}

	w.Write([]byte(first))
	if flusher != nil {
		flusher.Flush()
	}

	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			// Headers are committed; abort the connection so the client
			// observes a read error rather than a silently truncated body.
			log.Printf("Chat stream error: %v", err)
			panic(http.ErrAbortHandler)
		}
		if chunk == "" {
			continue
		}
		w.Write([]byte(chunk))
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"portfolio-backend/internal/models"
)

// Generation parameters are fixed per request; they are not caller-tunable.
const (
	geminiModel     = "gemini-1.5-flash"
	genTemperature  = 0.7
	genTopK         = 40
	genTopP         = 0.95
	genMaxOutTokens = 1024
)

// AnswerStream yields incremental text fragments from the upstream model.
// Next returns io.EOF when the stream has completed normally. Fragments may
// be empty; callers should skip those.
type AnswerStream interface {
	Next() (string, error)
}

// PromptSource supplies the system instruction prepended to every request.
type PromptSource interface {
	SystemPrompt() string
}

// GeminiService owns one Gemini client handle for the process lifetime.
type GeminiService struct {
	client         *genai.Client
	model          *genai.GenerativeModel
	prompts        PromptSource
	includeHistory bool
}

func NewGeminiService(apiKey string, prompts PromptSource, includeHistory bool) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SetTemperature(genTemperature)
	model.SetTopK(genTopK)
	model.SetTopP(genTopP)
	model.SetMaxOutputTokens(genMaxOutTokens)

	return &GeminiService{
		client:         client,
		model:          model,
		prompts:        prompts,
		includeHistory: includeHistory,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// StreamAnswer sends the active turn upstream and returns the response
// stream. The last message is the active user turn; in history mode prior
// turns are supplied as chat history, otherwise only the last message's
// text goes upstream alongside the system instruction.
func (s *GeminiService) StreamAnswer(ctx context.Context, messages []models.ChatMessage) (AnswerStream, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("empty conversation")
	}

	last := messages[len(messages)-1]
	prompt := buildPrompt(s.prompts.SystemPrompt(), last.Content)

	if s.includeHistory && len(messages) > 1 {
		cs := s.model.StartChat()
		cs.History = toGenaiHistory(messages[:len(messages)-1])
		return &geminiStream{it: cs.SendMessageStream(ctx, genai.Text(prompt))}, nil
	}

	return &geminiStream{it: s.model.GenerateContentStream(ctx, genai.Text(prompt))}, nil
}

// buildPrompt composes the system instruction and the active user message
// into the single content block sent upstream.
func buildPrompt(systemPrompt, userMessage string) string {
	return fmt.Sprintf("%s\n\nUser message: %s", systemPrompt, userMessage)
}

// toGenaiHistory maps prior turns onto Gemini chat roles. Gemini names the
// assistant role "model".
func toGenaiHistory(messages []models.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "model"
		if m.Role == "user" {
			role = "user"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return history
}

type geminiStream struct {
	it *genai.GenerateContentResponseIterator
}

func (g *geminiStream) Next() (string, error) {
	resp, err := g.it.Next()
	if err == iterator.Done {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return extractText(resp), nil
}

// extractText concatenates the text parts of all candidates in a response.
func extractText(resp *genai.GenerateContentResponse) string {
	var out string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out += string(text)
			}
		}
	}
	return out
}

// Package assistant wraps the OpenAI chat API behind the two AI features
// the platform exposes: post summarization and the help chatbot. When no
// API key is configured the assistant is nil and handlers answer 503.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"clubverse/internal/observability"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemInstruction = "You are a helpful AI assistant for ClubVerse, a platform for college clubs and organizations. Help users with questions about clubs, events, and general information. Keep responses concise and helpful."

const (
	chatTemperature = 0.7
	chatMaxTokens   = 1000
)

// HistoryEntry is one prior turn of a chatbot conversation as sent by the
// client. Roles other than "user" and "assistant" are dropped.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant issues chat completions for summaries and the help chatbot.
type Assistant struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

// New creates an Assistant. Returns nil when apiKey is empty so callers can
// treat the feature as unavailable with a single nil check.
func New(apiKey, model string, logger *slog.Logger) *Assistant {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger,
	}
}

// SummarizePrompt builds the summarization prompt for a post.
func SummarizePrompt(title, description string, coordinators []string) string {
	return fmt.Sprintf(`Please provide a concise summary of this club post:

Title: %s
Description: %s
Coordinators: %s

Please summarize the key points, main activities, and important details in 2-3 sentences.`,
		title, description, strings.Join(coordinators, ", "))
}

// Summarize produces a 2-3 sentence summary of a post.
func (a *Assistant) Summarize(ctx context.Context, title, description string, coordinators []string) (string, error) {
	return a.complete(ctx, "summarize", []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(SummarizePrompt(title, description, coordinators)),
	})
}

// Chat answers a chatbot message given the prior conversation turns. The
// reply is formatted as HTML for direct rendering by the client.
func (a *Assistant) Chat(ctx context.Context, message string, history []HistoryEntry) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemInstruction),
	}
	for _, entry := range CleanHistory(history) {
		if entry.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(entry.Content))
		} else {
			messages = append(messages, openai.UserMessage(entry.Content))
		}
	}
	messages = append(messages, openai.UserMessage(message))

	raw, err := a.complete(ctx, "chat", messages)
	if err != nil {
		return "", err
	}
	return FormatToHTML(raw), nil
}

func (a *Assistant) complete(ctx context.Context, operation string, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	start := time.Now()
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               a.model,
		Messages:            messages,
		Temperature:         openai.Float(chatTemperature),
		MaxCompletionTokens: openai.Int(chatMaxTokens),
	})
	if err != nil {
		observability.AssistantRequests.WithLabelValues(operation, "error").Inc()
		return "", fmt.Errorf("assistant %s: %w", operation, err)
	}
	if len(resp.Choices) == 0 {
		observability.AssistantRequests.WithLabelValues(operation, "error").Inc()
		return "", fmt.Errorf("assistant %s: no choices in response", operation)
	}

	observability.AssistantRequests.WithLabelValues(operation, "ok").Inc()
	a.logger.Debug("assistant request completed",
		slog.String("operation", operation),
		slog.String("model", a.model),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Int64("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int64("completion_tokens", resp.Usage.CompletionTokens),
	)
	return resp.Choices[0].Message.Content, nil
}

// CleanHistory drops unknown roles and a leading assistant turn, so the
// conversation always opens with a user message.
func CleanHistory(history []HistoryEntry) []HistoryEntry {
	cleaned := make([]HistoryEntry, 0, len(history))
	for _, entry := range history {
		if entry.Role == "user" || entry.Role == "assistant" {
			cleaned = append(cleaned, entry)
		}
	}
	if len(cleaned) > 0 && cleaned[0].Role != "user" {
		cleaned = cleaned[1:]
	}
	return cleaned
}

var (
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	bulletRe  = regexp.MustCompile(`\*\s*`)
	headerRe  = regexp.MustCompile(`-\s*(\w+ Club:)`)
	paraRe    = regexp.MustCompile(`\n{2,}`)
	newlineRe = regexp.MustCompile(`\n`)
)

// FormatToHTML converts the model's Markdown-ish output into the HTML
// fragments the web client renders.
func FormatToHTML(text string) string {
	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = bulletRe.ReplaceAllString(text, "<br>• ")
	text = headerRe.ReplaceAllString(text, "<br><br><strong>$1</strong>")
	text = paraRe.ReplaceAllString(text, "<br><br>")
	text = newlineRe.ReplaceAllString(text, "<br>")
	return strings.TrimSpace(text)
}

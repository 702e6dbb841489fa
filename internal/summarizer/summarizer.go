// Package summarizer adapts an OpenAI-compatible chat-completion endpoint
// for plain-language summaries of legal text.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/tmc/langchaingo/textsplitter"

	"clauselens/internal/config"
)

const systemPrompt = "You summarize legal text for non-lawyers. " +
	"Reply with a short plain-English summary of the clauses you are given. " +
	"Do not add advice, headings, or commentary."

// chunkSize is the per-request input bound in runes. Long sections are
// split at paragraph boundaries before submission and the chunk summaries
// are concatenated in order; zero overlap keeps reruns identical.
const chunkSize = 2000

var chunkSeparators = []string{"\n\n", "\n", " ", ""}

// Client calls a chat-completion model for summaries. It works against
// api.openai.com or any compatible local endpoint via SUMMARIZER_BASE_URL.
type Client struct {
	api      *openai.Client
	model    string
	splitter textsplitter.TextSplitter
}

// New builds a client from configuration. Returns nil when no summarizer
// is configured; callers treat a nil client as "fall back to excerpts".
func New(cfg *config.Config) *Client {
	if !cfg.SummarizerEnabled {
		slog.Info("summarizer disabled, category summaries will use excerpts")
		return nil
	}

	apiConfig := openai.DefaultConfig(cfg.SummarizerAPIKey)
	if cfg.SummarizerBaseURL != "" {
		apiConfig.BaseURL = cfg.SummarizerBaseURL
	}

	slog.Info("initializing summarizer", "model", cfg.SummarizerModel, "base_url", apiConfig.BaseURL)
	return &Client{
		api:   openai.NewClientWithConfig(apiConfig),
		model: cfg.SummarizerModel,
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(0),
			textsplitter.WithSeparators(chunkSeparators),
		),
	}
}

// Summarize returns a summary of text, chunking long input at paragraph
// boundaries and concatenating the per-chunk summaries in order. Any
// model failure is returned to the caller, which substitutes the section
// placeholder.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}
	// Short text is not worth a model round trip.
	if len([]rune(text)) < 40 {
		return text, nil
	}

	chunks, err := c.splitter.SplitText(text)
	if err != nil {
		return "", fmt.Errorf("failed to chunk text: %w", err)
	}

	summaries := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		summary, err := c.complete(ctx, chunk)
		if err != nil {
			return "", err
		}
		summaries = append(summaries, summary)
	}
	return strings.Join(summaries, " "), nil
}

func (c *Client) complete(ctx context.Context, text string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		MaxTokens:   200,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarizer returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

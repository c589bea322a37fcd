// Package ai wraps the Gemini generative model for presentation
// summarization, replacing the mock stub with the real client wiring
// demonstrated in scripts/test_gemini_sf.go.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.5-flash-preview-09-2025"

type Client struct {
	genai     *genai.Client
	modelName string
}

func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if modelName == "" {
		modelName = defaultModel
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("ai: creating genai client: %w", err)
	}
	return &Client{genai: gc, modelName: modelName}, nil
}

func (c *Client) Close() error {
	return c.genai.Close()
}

// Usage carries the token accounting genai reports alongside a
// response, for cost tracking in internal/database's ai_usage table.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

func (c *Client) generate(ctx context.Context, prompt string) (string, Usage, error) {
	model := c.genai.GenerativeModel(c.modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", Usage{}, err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", Usage{}, fmt.Errorf("ai: empty response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		fmt.Fprintf(&sb, "%v", part)
	}
	var usage Usage
	if resp.UsageMetadata != nil {
		usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return strings.TrimSpace(sb.String()), usage, nil
}

// ModelName reports the model this client was configured for, so
// callers can attribute logged usage to it.
func (c *Client) ModelName() string {
	return c.modelName
}

// SummarizeText produces a short summary of concatenated slide text.
func (c *Client) SummarizeText(ctx context.Context, text string) (string, Usage, error) {
	prompt := "Summarize the following presentation content in 2-3 sentences:\n\n" + text
	return c.generate(ctx, prompt)
}

// ExtractTitle infers a presentation title from its first slide's text.
func (c *Client) ExtractTitle(ctx context.Context, firstSlideText string) (string, Usage, error) {
	prompt := "In five words or fewer, give a title for a presentation whose opening slide reads:\n\n" + firstSlideText
	return c.generate(ctx, prompt)
}

// ExtractSlideTitle infers a short title for one slide's text.
func (c *Client) ExtractSlideTitle(ctx context.Context, slideText string) (string, Usage, error) {
	prompt := "In five words or fewer, give a title for this slide's content:\n\n" + slideText
	return c.generate(ctx, prompt)
}

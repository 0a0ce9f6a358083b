package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const (
	geminiKeyEnv       = "GEMINI_API_KEY"
	defaultGeminiModel = "gemini-2.5-flash"
)

type implGemini struct {
	client *genai.Client
}

func newGemini(ctx context.Context) (Provider, error) {
	key := os.Getenv(geminiKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key: set the %s environment variable", geminiKeyEnv)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implGemini{client: client}, nil
}

func (p *implGemini) Name() string {
	return "gemini"
}

func (p *implGemini) Complete(ctx context.Context, req Request) (Response, error) {
	model := req.Model
	if model == "" {
		model = defaultGeminiModel
	}

	cfg := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	// Temperature 0 is a deliberate setting, always forwarded.
	cfg.Temperature = genai.Ptr(float32(req.Temperature))

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return Response{}, p.classify(err)
	}

	resp := Response{}
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		resp.Text = text.String()
	}
	if result != nil && result.UsageMetadata != nil {
		resp.Usage = Usage{
			PromptTokens:     int64(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}

func (p *implGemini) classify(err error) error {
	msg := err.Error()
	transient := strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "UNAVAILABLE")
	return &Error{Provider: p.Name(), Transient: transient, Err: err}
}

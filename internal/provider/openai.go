package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	openAIKeyEnv       = "OPENAI_API_KEY"
	defaultOpenAIModel = "gpt-4o"
)

type implOpenAI struct {
	client openai.Client
}

func newOpenAI() (Provider, error) {
	key := os.Getenv(openAIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key: set the %s environment variable", openAIKeyEnv)
	}

	return &implOpenAI{
		client: openai.NewClient(option.WithAPIKey(key)),
	}, nil
}

func (p *implOpenAI) Name() string {
	return "openai"
}

func (p *implOpenAI) Complete(ctx context.Context, req Request) (Response, error) {
	model := req.Model
	if model == "" {
		model = defaultOpenAIModel
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	// Temperature 0 is a deliberate setting, always forwarded.
	params.Temperature = openai.Float(req.Temperature)

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Response{}, p.classify(err)
	}

	// No choices or a null message both count as a successful empty result.
	resp := Response{}
	if len(completion.Choices) > 0 {
		resp.Text = completion.Choices[0].Message.Content
	}
	resp.Usage = Usage{
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
		TotalTokens:      completion.Usage.TotalTokens,
	}

	return resp, nil
}

func (p *implOpenAI) classify(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		transient := apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode >= 500
		return &Error{Provider: p.Name(), Status: apierr.StatusCode, Transient: transient, Err: err}
	}
	return &Error{Provider: p.Name(), Err: err}
}

package provider

import "context"

// Request is a single chat-style completion request: one user message.
type Request struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Usage reports the provider's token accounting for one call.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Response carries the generated text. An empty Text with a nil error is a
// valid outcome: the call succeeded and the model produced nothing.
type Response struct {
	Text  string
	Usage Usage
}

// Provider is the boundary to an LLM backend. Implementations classify their
// failures via *Error so callers can distinguish transient from fatal.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (Response, error)
}

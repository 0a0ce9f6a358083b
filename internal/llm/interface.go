package llm

import "context"

// Invoker sends a single prompt to the configured LLM provider with bounded
// retry on transient failures. A non-nil error is the per-call failure
// signal; provider errors never escape in any other form.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

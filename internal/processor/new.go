package processor

import (
	"fmt"

	"github.com/ndthang042/guide-flow/internal/llm"
	"github.com/ndthang042/guide-flow/internal/logger"
	"github.com/ndthang042/guide-flow/internal/prompt"
)

type implProcessor struct {
	invoker llm.Invoker
	prompts *prompt.Store
	logger  logger.Logger
}

// New creates a Processor. Both prompt templates are resolved up front so a
// missing template aborts the run before any LLM call is made.
func New(inv llm.Invoker, prompts *prompt.Store, log logger.Logger) (Processor, error) {
	for _, name := range []string{prompt.ExtractConcepts, prompt.GenerateQA} {
		if _, err := prompts.Render(name, ""); err != nil {
			return nil, fmt.Errorf("resolve prompt template: %w", err)
		}
	}

	return &implProcessor{
		invoker: inv,
		prompts: prompts,
		logger:  log,
	}, nil
}

package processor

import (
	"context"

	"github.com/ndthang042/guide-flow/internal/prompt"
)

// Process runs both LLM calls for a single segment. The calls are
// independent: a failure in one never prevents or alters the other, and
// provider failures never propagate past this boundary.
func (p *implProcessor) Process(ctx context.Context, segment string) SegmentResult {
	var result SegmentResult

	if text, err := p.generate(ctx, prompt.ExtractConcepts, segment); err != nil {
		p.logger.Warn(ctx, "Failed to extract key concepts: %v", err)
	} else {
		result.KeyConcepts = &text
	}

	if text, err := p.generate(ctx, prompt.GenerateQA, segment); err != nil {
		p.logger.Warn(ctx, "Failed to generate Q&A pairs: %v", err)
	} else {
		result.QAPairs = &text
	}

	return result
}

// ProcessAll processes segments sequentially in input order and returns one
// result record per segment.
func (p *implProcessor) ProcessAll(ctx context.Context, segments []string) []SegmentResult {
	results := make([]SegmentResult, 0, len(segments))
	for i, segment := range segments {
		p.logger.Info(ctx, "Processing segment %d/%d...", i+1, len(segments))
		results = append(results, p.Process(ctx, segment))
	}
	return results
}

func (p *implProcessor) generate(ctx context.Context, name, segment string) (string, error) {
	filled, err := p.prompts.Render(name, segment)
	if err != nil {
		return "", err
	}
	return p.invoker.Invoke(ctx, filled)
}

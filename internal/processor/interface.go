package processor

import "context"

// SegmentResult holds the LLM-generated content for one transcript segment.
// Each field is nil when its generating call failed; the two calls are
// independent, so any combination of present/absent is possible.
type SegmentResult struct {
	KeyConcepts *string
	QAPairs     *string
}

// Processor runs the two LLM calls (key-concept extraction and Q&A
// generation) for transcript segments.
type Processor interface {
	Process(ctx context.Context, segment string) SegmentResult
	ProcessAll(ctx context.Context, segments []string) []SegmentResult
}

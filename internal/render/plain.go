package render

import (
	"fmt"
	"strings"

	"github.com/ndthang042/guide-flow/internal/processor"
)

const (
	conceptsHeading = "Key Concepts & Definitions:"
	qaHeading       = "Practice Questions & Answers:"
	notGenerated    = "Not generated for this segment."
)

// PlainText assembles the study guide as a single plain-text document. An
// empty result set yields an empty string.
func PlainText(results []processor.SegmentResult) string {
	if len(results) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines,
		"STUDY GUIDE",
		strings.Repeat("=", 40),
		"",
	)

	for i, result := range results {
		lines = append(lines, fmt.Sprintf("--- SEGMENT %d ---", i+1), "")
		lines = appendSection(lines, conceptsHeading, result.KeyConcepts)
		lines = appendSection(lines, qaHeading, result.QAPairs)
		lines = append(lines, strings.Repeat("=", 40), "")
	}

	return strings.Join(lines, "\n")
}

func appendSection(lines []string, heading string, content *string) []string {
	if content == nil {
		return append(lines, heading+" "+notGenerated, "")
	}
	return append(lines,
		heading,
		strings.Repeat("-", 30),
		strings.TrimSpace(*content),
		"",
	)
}

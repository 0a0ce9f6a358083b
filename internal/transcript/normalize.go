package transcript

import (
	"regexp"
	"strings"
)

// Filler vocabulary removed during normalization. Matching is whole-word and
// case-insensitive; a comma directly before a filler and a comma or ellipsis
// directly after it are dropped with it, so removal leaves no punctuation
// orphans ("a test, you know, so..." -> "a test").
var reFiller = regexp.MustCompile(`(?i)(?:,\s*)?\b(?:you know|uh|um|like|so)\b(?:\s*(?:,|\.\.+))?`)

var (
	reWhitespace       = regexp.MustCompile(`\s+`)
	reSpacedPeriods    = regexp.MustCompile(`\.(?:\s*\.)+`)
	reSpaceBeforePunct = regexp.MustCompile(`\s+([,.!?])`)
	reNoSpaceAfter     = regexp.MustCompile(`([,.!?])([^\s,.!?])`)
	reCommaRun         = regexp.MustCompile(`,(?:\s*,)+`)
	reLeadingComma     = regexp.MustCompile(`^,\s*`)
	reLeadingEllipsis  = regexp.MustCompile(`^\.\.\.\s*`)
	reTrailingComma    = regexp.MustCompile(`,$`)
	reTrailingEllipsis = regexp.MustCompile(`\s*\.\.\.$`)
)

// Normalize cleans raw transcript text: collapses whitespace, strips filler
// words, and repairs the punctuation artifacts stripping leaves behind.
// The result never starts or ends with a comma or ellipsis, never contains
// a whitespace run longer than one space, and Normalize is idempotent.
func Normalize(text string) string {
	t := collapseWhitespace(text)
	if t == "" {
		return ""
	}

	t = reFiller.ReplaceAllString(t, "")
	t = collapseWhitespace(t)

	// Punctuation repair. Order matters: each stage sees the previous
	// stage's output.
	t = reSpacedPeriods.ReplaceAllString(t, " ... ")
	t = reSpaceBeforePunct.ReplaceAllString(t, "$1")
	t = reNoSpaceAfter.ReplaceAllString(t, "$1 $2")
	t = reCommaRun.ReplaceAllString(t, ",")
	t = collapseWhitespace(t)

	// Boundary artifacts from filler removal. Stripping one artifact can
	// expose another ("gist, ..." loses the ellipsis and then the comma),
	// so repeat until the string stops changing.
	for {
		prev := t
		t = reLeadingComma.ReplaceAllString(t, "")
		t = reLeadingEllipsis.ReplaceAllString(t, "")
		t = reTrailingComma.ReplaceAllString(t, "")
		t = reTrailingEllipsis.ReplaceAllString(t, "")
		t = strings.TrimSpace(t)
		if t == prev {
			break
		}
	}

	return collapseWhitespace(t)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

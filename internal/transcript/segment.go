package transcript

import "strings"

// Segment splits text on whitespace and partitions the words into groups of
// exactly wordsPerSegment, the last group holding the remainder. Each group
// is rejoined with single spaces. Empty input yields nil. wordsPerSegment
// must be >= 1; validation is the caller's responsibility.
func Segment(text string, wordsPerSegment int) []string {
	if wordsPerSegment < 1 {
		return nil
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	segments := make([]string, 0, (len(words)+wordsPerSegment-1)/wordsPerSegment)
	for start := 0; start < len(words); start += wordsPerSegment {
		end := start + wordsPerSegment
		if end > len(words) {
			end = len(words)
		}
		segments = append(segments, strings.Join(words[start:end], " "))
	}

	return segments
}

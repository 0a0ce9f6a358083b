package transcript

import (
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		wordsPerSegment int
		wantCount       int
		wantWordCounts  []int
	}{
		{
			name:            "ten words in threes",
			input:           "one two three four five six seven eight nine ten",
			wordsPerSegment: 3,
			wantCount:       4,
			wantWordCounts:  []int{3, 3, 3, 1},
		},
		{
			name:            "exact fit",
			input:           "one two three four five",
			wordsPerSegment: 5,
			wantCount:       1,
			wantWordCounts:  []int{5},
		},
		{
			name:            "one word remainder",
			input:           "one two three four five six",
			wordsPerSegment: 5,
			wantCount:       2,
			wantWordCounts:  []int{5, 1},
		},
		{
			name:            "fewer words than segment size",
			input:           "one two",
			wordsPerSegment: 5,
			wantCount:       1,
			wantWordCounts:  []int{2},
		},
		{
			name:            "empty input",
			input:           "",
			wordsPerSegment: 100,
			wantCount:       0,
		},
		{
			name:            "whitespace only input",
			input:           "  \n\t ",
			wordsPerSegment: 3,
			wantCount:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Segment(tt.input, tt.wordsPerSegment)
			if len(segments) != tt.wantCount {
				t.Fatalf("Segment() returned %d segments, want %d", len(segments), tt.wantCount)
			}
			for i, want := range tt.wantWordCounts {
				if got := len(strings.Fields(segments[i])); got != want {
					t.Errorf("segment %d has %d words, want %d", i, got, want)
				}
			}
		})
	}
}

func TestSegmentExactMultiple(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 10))

	segments := Segment(text, 5)
	if len(segments) != 2 {
		t.Fatalf("Segment() returned %d segments, want 2", len(segments))
	}
	for i, seg := range segments {
		if seg != "word word word word word" {
			t.Errorf("segment %d = %q", i, seg)
		}
	}
}

func TestSegmentReconstruction(t *testing.T) {
	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		"a b c d e f g",
		"single",
		strings.TrimSpace(strings.Repeat("repeat ", 37)),
	}

	for _, input := range inputs {
		for _, n := range []int{1, 2, 3, 5, 100} {
			segments := Segment(input, n)

			var rebuilt []string
			for i, seg := range segments {
				words := strings.Fields(seg)
				if i < len(segments)-1 && len(words) != n {
					t.Errorf("Segment(%q, %d): segment %d has %d words", input, n, i, len(words))
				}
				if len(words) < 1 || len(words) > n {
					t.Errorf("Segment(%q, %d): segment %d out of bounds with %d words", input, n, i, len(words))
				}
				rebuilt = append(rebuilt, words...)
			}

			if got, want := strings.Join(rebuilt, " "), strings.Join(strings.Fields(input), " "); got != want {
				t.Errorf("Segment(%q, %d) does not reconstruct: got %q", input, n, got)
			}
		}
	}
}

func TestSegmentInvalidSize(t *testing.T) {
	if got := Segment("some words here", 0); got != nil {
		t.Errorf("Segment with size 0 = %v, want nil", got)
	}
}

func TestReadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := ReadFile("does-not-exist.txt"); err == nil {
			t.Error("ReadFile() should fail for a missing file")
		}
	})
}

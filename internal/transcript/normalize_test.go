package transcript

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fillers with punctuation and extra spaces",
			input: "Uh, this is, um, like, a test, you know, so... with extra  spaces.",
			want:  "this is a test with extra spaces.",
		},
		{
			name:  "no filler words",
			input: "no filler words here",
			want:  "no filler words here",
		},
		{
			name:  "leading and trailing spaces",
			input: "  leading and trailing spaces  ",
			want:  "leading and trailing spaces",
		},
		{
			name:  "uppercase fillers with ellipsis",
			input: "UM, So, LIKE... very loud fillers!",
			want:  "very loud fillers!",
		},
		{
			name:  "filler in the middle",
			input: "word um word",
			want:  "word word",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "multiple spaces between words",
			input: "multiple   spaces   between   words",
			want:  "multiple spaces between words",
		},
		{
			name:  "newlines and tabs",
			input: "newlines\nand\ttabs",
			want:  "newlines and tabs",
		},
		{
			name:  "filler is not stripped from larger words",
			input: "something",
			want:  "something",
		},
		{
			name:  "spaced out ellipsis is canonicalized",
			input: "wait . . . what",
			want:  "wait... what",
		},
		{
			name:  "space before punctuation removed",
			input: "hello , world !",
			want:  "hello, world!",
		},
		{
			name:  "missing space after comma inserted",
			input: "one,two,three",
			want:  "one, two, three",
		},
		{
			name:  "comma runs collapse",
			input: "a,, ,b",
			want:  "a, b",
		},
		{
			name:  "sentence-final so keeps its period",
			input: "I think so. Moving on.",
			want:  "I think. Moving on.",
		},
		{
			name:  "trailing filler leaves no trailing comma",
			input: "that was the lecture, you know",
			want:  "that was the lecture",
		},
		{
			name:  "leading filler leaves no leading comma",
			input: "So, the first topic is recursion.",
			want:  "the first topic is recursion.",
		},
		{
			name:  "trailing comma behind a trailing ellipsis",
			input: "that is the gist, ...",
			want:  "that is the gist",
		},
		{
			name:  "string of only boundary artifacts",
			input: "...,...",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Uh, this is, um, like, a test, you know, so... with extra  spaces.",
		"UM, So, LIKE... very loud fillers!",
		"wait . . . what",
		"one,two,three",
		"plain sentence with nothing to fix.",
		"So, um, you know... , like, uh",
		"that is the gist, ...",
		"...,...",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeLeavesNoArtifacts(t *testing.T) {
	inputs := []string{
		"Um, hello there",
		"hello there, um",
		"like... the whole thing, you know...",
		"so,,, what about, um, commas",
		", already dangling",
		"... already dangling too",
		"that is the gist, ...",
		"closing thought ... ,",
		"...,...",
	}

	for _, input := range inputs {
		got := Normalize(input)

		if strings.Contains(got, "  ") {
			t.Errorf("Normalize(%q) = %q contains a whitespace run", input, got)
		}
		for _, prefix := range []string{",", "...", " "} {
			if strings.HasPrefix(got, prefix) {
				t.Errorf("Normalize(%q) = %q starts with %q", input, got, prefix)
			}
		}
		for _, suffix := range []string{",", "...", " "} {
			if strings.HasSuffix(got, suffix) {
				t.Errorf("Normalize(%q) = %q ends with %q", input, got, suffix)
			}
		}
	}
}

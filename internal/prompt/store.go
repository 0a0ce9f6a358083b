package prompt

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Template names used by the segment processor.
const (
	ExtractConcepts = "extract_concepts"
	GenerateQA      = "generate_qa"
)

//go:embed templates/*.txt
var embedded embed.FS

// Store resolves prompt templates by name. Templates ship embedded in the
// binary; a non-empty override directory takes precedence per name so prompts
// can be tuned without rebuilding.
type Store struct {
	overrideDir string
}

func NewStore(overrideDir string) *Store {
	return &Store{overrideDir: overrideDir}
}

// Render looks up the named template and fills in the segment text. An
// unknown name is a configuration error.
func (s *Store) Render(name, segment string) (string, error) {
	raw, err := s.lookup(name)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse prompt template %s: %w", name, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, struct{ Segment string }{Segment: segment}); err != nil {
		return "", fmt.Errorf("render prompt template %s: %w", name, err)
	}

	return out.String(), nil
}

func (s *Store) lookup(name string) (string, error) {
	if s.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(s.overrideDir, name+".txt"))
		if err == nil {
			return string(data), nil
		}
	}

	data, err := embedded.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("unknown prompt template %q", name)
	}
	return string(data), nil
}

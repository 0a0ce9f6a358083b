package provider

import (
	"context"
	"fmt"
)

// New builds the provider named in the configuration. A missing credential
// is reported here, before any network call is attempted.
func New(ctx context.Context, name string) (Provider, error) {
	switch name {
	case "openai":
		return newOpenAI()
	case "gemini":
		return newGemini(ctx)
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}

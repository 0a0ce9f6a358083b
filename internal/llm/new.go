package llm

import (
	backoff "github.com/cenkalti/backoff/v4"

	"github.com/ndthang042/guide-flow/internal/logger"
	"github.com/ndthang042/guide-flow/internal/provider"
)

type implInvoker struct {
	provider    provider.Provider
	logger      logger.Logger
	model       string
	maxTokens   int
	temperature float64
	maxRetries  int
	baseDelay   float64
	timer       backoff.Timer
}

// Option configures an Invoker.
type Option func(*implInvoker)

func WithModel(model string) Option {
	return func(i *implInvoker) { i.model = model }
}

func WithMaxTokens(n int) Option {
	return func(i *implInvoker) { i.maxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(i *implInvoker) { i.temperature = t }
}

// WithMaxRetries sets the retry budget: n retries means up to n+1 attempts.
func WithMaxRetries(n int) Option {
	return func(i *implInvoker) { i.maxRetries = n }
}

// WithBaseDelay sets the backoff base delay in seconds.
func WithBaseDelay(seconds float64) Option {
	return func(i *implInvoker) { i.baseDelay = seconds }
}

// withTimer swaps the backoff timer; tests use it to retry without sleeping.
func withTimer(t backoff.Timer) Option {
	return func(i *implInvoker) { i.timer = t }
}

// New creates an Invoker bound to the given provider.
func New(p provider.Provider, log logger.Logger, opts ...Option) Invoker {
	inv := &implInvoker{
		provider:    p,
		logger:      log,
		maxTokens:   1500,
		temperature: 0.7,
		maxRetries:  3,
		baseDelay:   1.0,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

package llm

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/ndthang042/guide-flow/internal/provider"
)

// Invoke runs one completion request. Transient provider errors are retried
// up to the configured budget; anything else fails on the first attempt.
func (i *implInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	req := provider.Request{
		Model:       i.model,
		Prompt:      prompt,
		MaxTokens:   i.maxTokens,
		Temperature: i.temperature,
	}

	attempt := 0
	var text string

	operation := func() error {
		attempt++
		i.logger.Info(ctx, "Attempt %d/%d to call LLM (provider: %s). Prompt length: %d chars.",
			attempt, i.maxRetries+1, i.provider.Name(), len(prompt))

		resp, err := i.provider.Complete(ctx, req)
		if err != nil {
			if provider.IsTransient(err) {
				i.logger.Warn(ctx, "LLM API error on attempt %d: %v", attempt, err)
				return err
			}
			i.logger.Error(ctx, "Unexpected error during LLM call, not retrying: %v", err)
			return backoff.Permanent(err)
		}

		text = resp.Text
		i.logger.Info(ctx, "LLM call successful. Prompt tokens: %d, completion tokens: %d, total: %d",
			resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)
		return nil
	}

	notify := func(err error, delay time.Duration) {
		i.logger.Info(ctx, "Retrying in %.2f seconds...", delay.Seconds())
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(newPowerBackOff(i.baseDelay), uint64(i.maxRetries)),
		ctx,
	)

	if err := backoff.RetryNotifyWithTimer(operation, policy, notify, i.timer); err != nil {
		i.logger.Error(ctx, "LLM call failed after %d attempt(s): %v", attempt, err)
		return "", fmt.Errorf("llm call failed: %w", err)
	}

	return text, nil
}

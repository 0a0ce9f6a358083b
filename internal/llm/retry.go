package llm

import (
	"math"
	"math/rand"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// powerBackOff delays retry n by baseDelay^n seconds plus a uniform jitter
// in [0, 0.1*baseDelay^n). The exponent base is the base delay itself, so a
// base delay of 1.0 gives a constant ~1s wait between attempts.
type powerBackOff struct {
	baseDelay float64
	attempt   int
}

var _ backoff.BackOff = (*powerBackOff)(nil)

func newPowerBackOff(baseDelay float64) *powerBackOff {
	return &powerBackOff{baseDelay: baseDelay}
}

func (b *powerBackOff) NextBackOff() time.Duration {
	delay := math.Pow(b.baseDelay, float64(b.attempt))
	jitter := rand.Float64() * 0.1 * delay
	b.attempt++
	return time.Duration((delay + jitter) * float64(time.Second))
}

func (b *powerBackOff) Reset() {
	b.attempt = 0
}

package domain

import (
	"context"
	"time"
)

const DefaultVerificationDelay = 2 * time.Second

// Verifier simulates a remote verification call: classification runs only
// after a fixed delay. There is no cancellation; a caller that stops
// waiting simply abandons the result.
type Verifier struct {
	validator *Validator
	delay     time.Duration
	after     func(time.Duration) <-chan time.Time
}

func NewVerifier(v *Validator, delay time.Duration) *Verifier {
	if delay < 0 {
		delay = 0
	}
	return &Verifier{validator: v, delay: delay, after: time.After}
}

// WithAfter replaces the timer source, mainly for tests.
func (v *Verifier) WithAfter(after func(time.Duration) <-chan time.Time) *Verifier {
	v.after = after
	return v
}

func (v *Verifier) Delay() time.Duration { return v.delay }

// Submit schedules classification of code and returns a channel that
// receives exactly one Result. The channel is buffered, so nobody has to
// read it.
func (v *Verifier) Submit(code string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		if v.delay > 0 {
			<-v.after(v.delay)
		}
		out <- v.validator.Classify(code)
	}()
	return out
}

// Verify waits for a submitted classification or for ctx to end.
func (v *Verifier) Verify(ctx context.Context, code string) (Result, error) {
	select {
	case r := <-v.Submit(code):
		return r, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

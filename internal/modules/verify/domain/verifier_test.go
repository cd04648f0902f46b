package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// manualTimer hands out one channel per After call and fires on demand.
type manualTimer struct {
	requested chan time.Duration
	fire      chan time.Time
}

func newManualTimer() *manualTimer {
	return &manualTimer{requested: make(chan time.Duration, 4), fire: make(chan time.Time)}
}

func (m *manualTimer) After(d time.Duration) <-chan time.Time {
	m.requested <- d
	return m.fire
}

func TestVerifier_NoDelayClassifiesImmediately(t *testing.T) {
	defer goleak.VerifyNone(t)

	v := NewVerifier(testValidator(), 0)
	r, err := v.Verify(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, StatusFresh, r.Status)
}

func TestVerifier_WaitsForDelay(t *testing.T) {
	defer goleak.VerifyNone(t)

	timer := newManualTimer()
	v := NewVerifier(testValidator(), 2*time.Second).WithAfter(timer.After)

	ch := v.Submit("4526580")
	assert.Equal(t, 2*time.Second, <-timer.requested)

	select {
	case <-ch:
		t.Fatal("result delivered before the delay elapsed")
	default:
	}

	timer.fire <- time.Now()
	r := <-ch
	assert.Equal(t, Result{Code: "4526580", Status: StatusExpired}, r)
}

func TestVerifier_AbandonedOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	timer := newManualTimer()
	v := NewVerifier(testValidator(), time.Second).WithAfter(timer.After)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := v.Verify(ctx, "abc123")
		done <- err
	}()

	<-timer.requested
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	// the pending classification still runs to completion
	close(timer.fire)
}

func TestVerifier_NegativeDelay(t *testing.T) {
	v := NewVerifier(testValidator(), -time.Second)
	assert.Equal(t, time.Duration(0), v.Delay())
}

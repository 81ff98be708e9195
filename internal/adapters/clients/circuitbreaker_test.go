package clients

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker() *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:   3,
		Timeout:       30 * time.Second,
		HalfOpenLimit: 2,
	})
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := newTestBreaker()

	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State())
	assert.True(t, cb.Allow())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := newTestBreaker()

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb := newTestBreaker()
	now := time.Now()
	cb.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())

	now = now.Add(31 * time.Second)
	assert.True(t, cb.Allow(), "timeout elapsed, probe should be allowed")
	assert.Equal(t, StateHalfOpen, cb.State())
}

func TestCircuitBreaker_HalfOpenClosesAfterSuccesses(t *testing.T) {
	cb := newTestBreaker()
	now := time.Now()
	cb.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	now = now.Add(31 * time.Second)
	assert.True(t, cb.Allow())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.State())

	assert.True(t, cb.Allow())
	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenReopensOnFailure(t *testing.T) {
	cb := newTestBreaker()
	now := time.Now()
	cb.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	now = now.Add(31 * time.Second)
	assert.True(t, cb.Allow())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.False(t, cb.Allow())
}

func TestCircuitBreaker_HalfOpenLimitsConcurrentProbes(t *testing.T) {
	cb := newTestBreaker()
	now := time.Now()
	cb.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	now = now.Add(31 * time.Second)

	assert.True(t, cb.Allow())  // first probe, transitions to half-open
	assert.True(t, cb.Allow())  // second probe, within limit
	assert.False(t, cb.Allow()) // limit reached
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

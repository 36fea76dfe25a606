package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdown_ReachesZero(t *testing.T) {
	t.Parallel()

	c := NewCountdown()
	c.Start(3, time.Millisecond)

	deadline := time.After(time.Second)
	for c.Remaining() > 0 {
		select {
		case <-deadline:
			t.Fatalf("countdown stuck at %d", c.Remaining())
		default:
			time.Sleep(time.Millisecond)
		}
	}
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdown_NeverNegative(t *testing.T) {
	t.Parallel()

	c := NewCountdown()
	c.Start(1, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, c.Remaining())

	c.Start(0, time.Millisecond)
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdown_Reset(t *testing.T) {
	t.Parallel()

	c := NewCountdown()
	c.Start(60, time.Hour)
	assert.Equal(t, 60, c.Remaining())

	c.Reset()
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdown_RestartSupersedes(t *testing.T) {
	t.Parallel()

	c := NewCountdown()
	c.Start(60, time.Hour)
	c.Start(5, time.Hour)
	assert.Equal(t, 5, c.Remaining())
}

func TestAfter_Fires(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{})
	After(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}
}

func TestAfter_Cancel(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{}, 1)
	cancel := After(50*time.Millisecond, func() { fired <- struct{}{} })
	cancel()
	cancel() // safe to call twice

	select {
	case <-fired:
		t.Fatal("cancelled callback fired")
	case <-time.After(100 * time.Millisecond):
	}
}

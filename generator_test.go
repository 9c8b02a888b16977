package grpcecho

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorZeroDelay(t *testing.T) {
	gen, err := NewGenerator(3, 0)
	require.NoError(t, err)

	ctx := context.Background()
	for _, want := range []string{"message 1", "message 2", "message 3"} {
		req, ok, err := gen.Next(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, req.GetInput())
	}
	req, ok, err := gen.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, req)
	assert.Equal(t, Exhausted, gen.State())
}

func TestGeneratorCounts(t *testing.T) {
	// Drives the state machine with a fake clock that only moves when the
	// generator asks to wait, counting those waits.
	for _, count := range []int{0, 1, 2, 5, 17} {
		for _, delay := range []time.Duration{0, time.Millisecond, time.Hour} {
			t.Run(fmt.Sprintf("count=%d/delay=%v", count, delay), func(t *testing.T) {
				gen, err := NewGenerator(count, delay)
				require.NoError(t, err)

				now := time.Unix(1000, 0)
				var items, pending int
				for {
					step := gen.Poll(now)
					if step.Kind == StepDone {
						break
					}
					if step.Kind == StepPending {
						pending++
						require.False(t, step.ReadyAt.Before(now))
						now = step.ReadyAt
						continue
					}
					items++
					assert.LessOrEqual(t, gen.Sent(), count)
					assert.Equal(t, fmt.Sprintf("message %d", items), step.Request.GetInput())
				}
				assert.Equal(t, count, items)
				if delay > 0 && count > 0 {
					assert.Equal(t, count-1, pending)
				} else {
					// a zero delay has elapsed by the time it is polled
					assert.Zero(t, pending)
				}
			})
		}
	}
}

func TestGeneratorStates(t *testing.T) {
	gen, err := NewGenerator(2, time.Second)
	require.NoError(t, err)
	start := time.Unix(0, 0)

	// no delay before the first message
	assert.Equal(t, ReadyToEmit, gen.State())
	step := gen.Poll(start)
	require.Equal(t, StepItem, step.Kind)
	assert.Equal(t, AwaitingDelay, gen.State())

	step = gen.Poll(start.Add(999 * time.Millisecond))
	require.Equal(t, StepPending, step.Kind)
	assert.Equal(t, start.Add(time.Second), step.ReadyAt)
	assert.Equal(t, AwaitingDelay, gen.State())

	step = gen.Poll(start.Add(time.Second))
	require.Equal(t, StepItem, step.Kind)
	assert.Equal(t, "message 2", step.Request.GetInput())
	// no delay after the last message
	assert.Equal(t, Exhausted, gen.State())

	step = gen.Poll(start.Add(time.Second))
	assert.Equal(t, StepDone, step.Kind)

	assert.Panics(t, func() {
		gen.Poll(start.Add(time.Hour))
	})
}

func TestGeneratorZeroDelayStillAwaits(t *testing.T) {
	gen, err := NewGenerator(2, 0)
	require.NoError(t, err)
	now := time.Unix(0, 0)

	require.Equal(t, StepItem, gen.Poll(now).Kind)
	assert.Equal(t, AwaitingDelay, gen.State())
	require.Equal(t, StepItem, gen.Poll(now).Kind)
	assert.Equal(t, Exhausted, gen.State())
}

func TestGeneratorEmpty(t *testing.T) {
	gen, err := NewGenerator(0, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, Exhausted, gen.State())

	_, ok, err := gen.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Panics(t, func() {
		_, _, _ = gen.Next(context.Background())
	})
}

func TestGeneratorInvalid(t *testing.T) {
	_, err := NewGenerator(-1, 0)
	assert.Error(t, err)
	_, err = NewGenerator(1, -time.Second)
	assert.Error(t, err)
}

func TestGeneratorPacing(t *testing.T) {
	const delay = 20 * time.Millisecond
	gen, err := NewGenerator(3, delay)
	require.NoError(t, err)

	start := time.Now()
	var n int
	for {
		_, ok, err := gen.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		n++
	}
	assert.Equal(t, 3, n)
	elapsed := time.Since(start)
	assert.Truef(t, elapsed >= 2*delay, "three messages took %v", elapsed)
}

func TestGeneratorCancelled(t *testing.T) {
	gen, err := NewGenerator(2, time.Hour)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())

	_, ok, err := gen.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	time.AfterFunc(10*time.Millisecond, cancel)
	_, ok, err = gen.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
	assert.Equal(t, 1, gen.Sent())
}

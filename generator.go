package grpcecho

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/echostream/grpcecho/echopb"
)

// GeneratorState is the state of a Generator.
type GeneratorState int

const (
	// ReadyToEmit means the next poll produces a message or, if all
	// messages were sent, reports the end.
	ReadyToEmit GeneratorState = iota
	// AwaitingDelay means a message was produced and the pause before the
	// next one has not elapsed yet.
	AwaitingDelay
	// Exhausted means every message was produced.
	Exhausted
)

func (s GeneratorState) String() string {
	switch s {
	case ReadyToEmit:
		return "ReadyToEmit"
	case AwaitingDelay:
		return "AwaitingDelay"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("GeneratorState(%d)", int(s))
	}
}

// StepKind says what a call to Generator.Poll produced.
type StepKind int

const (
	StepItem StepKind = iota
	StepPending
	StepDone
)

// Step is the result of Generator.Poll.
type Step struct {
	Kind StepKind
	// Request is set for StepItem.
	Request *echopb.EchoRequest
	// ReadyAt is set for StepPending: polling before this instant returns
	// StepPending again.
	ReadyAt time.Time
}

// Generator produces a fixed number of requests, "message 1" through
// "message N", pausing between consecutive requests. There is no pause
// before the first request or after the last one.
//
// A Generator is used once, by one goroutine. Polling it again after it
// has reported StepDone panics.
type Generator struct {
	count int
	delay time.Duration
	now   func() time.Time

	sent     int
	state    GeneratorState
	readyAt  time.Time
	finished bool
}

// NewGenerator returns a generator of count requests spaced delay apart.
func NewGenerator(count int, delay time.Duration) (*Generator, error) {
	if count < 0 {
		return nil, errors.Errorf("message count must not be negative: %d", count)
	}
	if delay < 0 {
		return nil, errors.Errorf("message delay must not be negative: %v", delay)
	}
	g := &Generator{
		count: count,
		delay: delay,
		now:   time.Now,
	}
	if count == 0 {
		g.state = Exhausted
	}
	return g, nil
}

// State returns the current state.
func (g *Generator) State() GeneratorState {
	return g.state
}

// Sent returns how many requests have been produced so far.
func (g *Generator) Sent() int {
	return g.sent
}

// Poll advances the generator as far as it can at the instant now. It does
// not block; callers decide how to wait when it returns StepPending.
func (g *Generator) Poll(now time.Time) Step {
	if g.finished {
		panic("grpcecho: Generator polled after it reported StepDone")
	}

	if g.state == AwaitingDelay {
		if now.Before(g.readyAt) {
			return Step{Kind: StepPending, ReadyAt: g.readyAt}
		}
		g.state = ReadyToEmit
		g.readyAt = time.Time{}
	}

	if g.sent == g.count {
		g.state = Exhausted
		g.finished = true
		return Step{Kind: StepDone}
	}

	g.sent++
	req := &echopb.EchoRequest{Input: fmt.Sprintf("message %d", g.sent)}
	if g.sent < g.count {
		g.state = AwaitingDelay
		g.readyAt = now.Add(g.delay)
	} else {
		g.state = Exhausted
	}
	return Step{Kind: StepItem, Request: req}
}

// Next returns the next request, sleeping out any pending delay first. It
// returns false once all requests were produced, and the context error if
// ctx is done while waiting.
func (g *Generator) Next(ctx context.Context) (*echopb.EchoRequest, bool, error) {
	for {
		step := g.Poll(g.now())
		switch step.Kind {
		case StepItem:
			return step.Request, true, nil
		case StepDone:
			return nil, false, nil
		}

		timer := time.NewTimer(step.ReadyAt.Sub(g.now()))
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, false, ctx.Err()
		}
	}
}

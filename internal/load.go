package internal

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/echostream/grpcecho"
)

// LoadOptions configures SendLoad.
type LoadOptions struct {
	// Workers is the number of goroutines issuing calls of each kind.
	Workers int
	// Duration is how long new calls are started for.
	Duration time.Duration
	// StreamMessages is the number of requests sent per streaming call.
	StreamMessages int
	// StreamDelay is the pause between requests of a streaming call.
	StreamDelay time.Duration
}

// LoadStats counts the calls made by SendLoad.
type LoadStats struct {
	UnaryCalls  int64
	StreamCalls int64
	Responses   int64
}

// SendLoad uses opts.Workers goroutines for each kind of call (unary and
// bidi-streaming) to send calls with the given client until opts.Duration
// has passed. It fails on the first call that fails, and checks that every
// stream is answered with one response per request plus the trailing one.
func SendLoad(ctx context.Context, client *grpcecho.Client, opts LoadOptions) (LoadStats, error) {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	var done atomic.Bool
	var unary, streams, responses atomic.Int64
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	grp, ctx := errgroup.WithContext(ctx)
	type action func(context.Context) error
	doUnary := func(ctx context.Context) error {
		if _, err := client.Echo(ctx, "load"); err != nil {
			return err
		}
		unary.Add(1)
		responses.Add(1)
		return nil
	}
	doStream := func(ctx context.Context) error {
		gen, err := grpcecho.NewGenerator(opts.StreamMessages, opts.StreamDelay)
		if err != nil {
			return err
		}
		res, err := client.StreamEcho(ctx, gen)
		if err != nil {
			return err
		}
		if len(res.Responses) != res.Sent+1 {
			return errors.Errorf("stream sent %d requests but got %d responses", res.Sent, len(res.Responses))
		}
		streams.Add(1)
		responses.Add(int64(len(res.Responses)))
		return nil
	}
	for i := 0; i < opts.Workers; i++ {
		for _, fn := range []action{doUnary, doStream} {
			fn := fn
			grp.Go(func() error {
				for {
					if done.Load() {
						return nil
					}
					if err := fn(ctx); err != nil {
						return err
					}
				}
			})
		}
	}
	timer := time.AfterFunc(opts.Duration, func() {
		done.Store(true)
	})
	defer timer.Stop()
	err := grp.Wait()
	stats := LoadStats{
		UnaryCalls:  unary.Load(),
		StreamCalls: streams.Load(),
		Responses:   responses.Load(),
	}
	return stats, errors.Wrap(err, "load run failed")
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/echostream/grpcecho"
	"github.com/echostream/grpcecho/internal"
	"github.com/echostream/grpcecho/internal/config"
	"github.com/echostream/grpcecho/internal/logging"
)

func main() {
	root := &cobra.Command{
		Use:           "echoclient",
		Short:         "Send calls to an echo server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddClientFlags(root.PersistentFlags())
	root.AddCommand(
		subcommand("unary", "Send one unary call and print the response or error details", runUnary),
		subcommand("stream", "Send a paced stream of requests and print every response", runStream),
		subcommand("load", "Send unary and streaming calls concurrently for a while", runLoad),
	)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "echoclient: %v\n", err)
		os.Exit(1)
	}
}

type runFunc func(ctx context.Context, cfg config.Client, client *grpcecho.Client, logger zerolog.Logger) error

func subcommand(use, short string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.Client
			if err := config.Load(cmd.Flags(), &cfg); err != nil {
				return err
			}
			logger, err := logging.New(os.Stderr, cfg.Level, cfg.Format)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			logger.Info().Str("target", cfg.Target).Msg("connecting")
			dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
			defer cancel()
			cc, err := internal.BlockingDial(dialCtx, cfg.Target, grpc.WithTransportCredentials(insecure.NewCredentials()))
			if err != nil {
				return err
			}
			defer func() {
				_ = cc.Close()
			}()

			client := grpcecho.NewClient(cc, grpcecho.WithCodec(cfg.Codec), grpcecho.WithClientLogger(logger))
			return run(ctx, cfg, client, logger)
		},
	}
}

func runUnary(ctx context.Context, cfg config.Client, client *grpcecho.Client, logger zerolog.Logger) error {
	output, err := client.Echo(ctx, cfg.Input)
	if err != nil {
		return reportError(logger, err)
	}
	logger.Info().Str("output", output).Msg("received response")
	return nil
}

func runStream(ctx context.Context, cfg config.Client, client *grpcecho.Client, logger zerolog.Logger) error {
	gen, err := grpcecho.NewGenerator(cfg.Messages, cfg.Delay)
	if err != nil {
		return err
	}
	logger.Info().Int("messages", cfg.Messages).Dur("delay", cfg.Delay).Msg("starting stream")
	res, err := client.StreamEcho(ctx, gen)
	for _, output := range res.Responses {
		logger.Info().Str("output", output).Msg("received response")
	}
	if err != nil {
		return reportError(logger, err)
	}
	logger.Info().Int("sent", res.Sent).Int("received_messages", len(res.Responses)).Msg("stream complete")
	return nil
}

func runLoad(ctx context.Context, cfg config.Client, client *grpcecho.Client, logger zerolog.Logger) error {
	logger.Info().Int("workers", cfg.Workers).Dur("duration", cfg.Duration).Msg("generating load")
	stats, err := internal.SendLoad(ctx, client, internal.LoadOptions{
		Workers:        cfg.Workers,
		Duration:       cfg.Duration,
		StreamMessages: cfg.Messages,
		StreamDelay:    cfg.Delay,
	})
	logger.Info().
		Int64("unary_calls", stats.UnaryCalls).
		Int64("stream_calls", stats.StreamCalls).
		Int64("responses", stats.Responses).
		Msg("load finished")
	if err != nil {
		return reportError(logger, err)
	}
	return nil
}

// reportError logs the code, message and details of a failed call.
func reportError(logger zerolog.Logger, err error) error {
	var callErr *grpcecho.CallError
	if !errors.As(err, &callErr) {
		return err
	}
	logger.Error().
		Int("code", int(callErr.Code)).
		Str("code_name", callErr.Code.String()).
		Int("details_len", len(callErr.Details)).
		Str("msg", callErr.Message).
		Msg("call failed")
	for i, d := range callErr.Details {
		ev := logger.Info().Int("i", i).Str("type", d.TypeURL).Int("len", len(d.Value))
		if d.Message != nil {
			ev = ev.Str("value", fmt.Sprint(d.Message))
		}
		ev.Msg("error detail")
	}
	return err
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fullstorydev/grpchan"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/echostream/grpcecho"
	"github.com/echostream/grpcecho/internal/config"
	"github.com/echostream/grpcecho/internal/logging"
)

func main() {
	cmd := &cobra.Command{
		Use:           "echoserver",
		Short:         "Serve the echo service",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.Server
			if err := config.Load(cmd.Flags(), &cfg); err != nil {
				return err
			}
			logger, err := logging.New(os.Stderr, cfg.Level, cfg.Format)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
	config.AddServerFlags(cmd.Flags())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "echoserver: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg config.Server, logger zerolog.Logger) error {
	opts := []grpcecho.ServerOption{
		grpcecho.WithServerLogger(logger),
		grpcecho.WithErrorDetails(cfg.ErrorDetails),
	}

	var metricsSvr *http.Server
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, grpcecho.WithMetrics(grpcecho.NewMetrics(reg)))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		metricsSvr = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
			if err := metricsSvr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	echoSvc := grpcecho.NewEchoServiceHandler(opts...)
	handlers := grpchan.HandlerMap{}
	echoSvc.RegisterWith(handlers)

	svr := grpc.NewServer()
	handlers.ForEach(svr.RegisterService)

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return err
	}
	logger.Info().Str("addr", lis.Addr().String()).Bool("error_details", cfg.ErrorDetails).Msg("listening")

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		echoSvc.InitiateShutdown()
		if metricsSvr != nil {
			_ = metricsSvr.Close()
		}
		svr.GracefulStop()
	}()
	// This only returns on failure or after GracefulStop.
	return svr.Serve(lis)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/orf-cloud/app"
	"github.com/lixenwraith/orf-cloud/audio"
	"github.com/lixenwraith/orf-cloud/config"
	"github.com/lixenwraith/orf-cloud/core"
	"github.com/lixenwraith/orf-cloud/status"
)

const metricsShutdownTimeout = 2 * time.Second

func runInteractive(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logFile, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	var cues *audio.CuePlayer
	if cfg.Audio.Enabled {
		cues = audio.NewCuePlayer(cfg.Audio)
		if err := cues.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
			cues = nil
		} else {
			defer cues.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := status.NewRegistry()
	a := app.New(screen, cfg, app.Options{Status: reg, Cues: cues})

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Metrics.Addr != "" {
		srv := newMetricsServer(cfg.Metrics, reg)
		g.Go(func() error { return serveMetrics(gctx, srv) })
	}
	g.Go(func() error {
		defer stop()
		err := a.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	log.Info().Err(err).Msg("shutdown")
	return err
}

func newMetricsServer(cfg config.MetricsConfig, reg *status.Registry) *http.Server {
	preg := prometheus.NewRegistry()
	preg.MustRegister(
		status.NewCollector(reg, cfg.Namespace),
		collectors.NewGoCollector(),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(preg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// serveMetrics runs srv until ctx is done
func serveMetrics(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	core.Go(func() { errc <- srv.ListenAndServe() })
	log.Info().Str("addr", srv.Addr).Msg("metrics listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}

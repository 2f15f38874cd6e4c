package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"letternet/internal/config"
	"letternet/internal/dataset"
	"letternet/internal/metrics"
	"letternet/internal/trainer"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (built-in defaults when empty)")
	datasetPath := flag.String("dataset", "", "Glyph file or directory to train on")
	classes := flag.Int("classes", 0, "Number of built-in letters (4, 6 or 8)")
	epochs := flag.Int("epochs", 0, "Number of training epochs")
	seed := flag.Int64("seed", 0, "PRNG seed")
	shuffle := flag.Bool("shuffle", false, "Shuffle sample order every epoch")
	logEvery := flag.Int("log-every", 0, "Log every N epochs")
	logLevel := flag.String("log-level", "", "Log level")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("failed to load config")
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		Dataset:     *datasetPath,
		Classes:     *classes,
		Epochs:      *epochs,
		Seed:        *seed,
		Shuffle:     *shuffle,
		LogEvery:    *logEvery,
		LogLevel:    *logLevel,
		MetricsAddr: *metricsAddr,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	data, err := loadDataset(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}
	log.Info().
		Int("glyphs", len(data.Samples)).
		Int("width", data.Width).
		Int("height", data.Height).
		Strs("labels", data.Labels).
		Msg("dataset ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCfg := trainer.RunConfig{
		Epochs:   cfg.Epochs,
		LogEvery: cfg.LogEvery,
		Seed:     cfg.Seed,
		Shuffle:  cfg.Shuffle,
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to register metrics")
		}
		runCfg.Collector = collector
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server stopped")
			}
		}()
		defer srv.Close()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
	}

	if err := run(ctx, cfg, runCfg, data, os.Stdout); err != nil {
		log.Error().Err(err).Msg("training failed")
		stop()
		os.Exit(1)
	}
}

func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if cfg.Dataset != "" {
		return dataset.Load(cfg.Dataset)
	}
	return dataset.Letters(cfg.Classes)
}

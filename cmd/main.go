package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	service "github.com/okian/fittrack/internal/app"
	"github.com/okian/fittrack/internal/config"
	"github.com/okian/fittrack/pkg/logger"
	"github.com/okian/fittrack/pkg/metrics"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logging: " + err.Error() + "\n")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		logger.Get().Error(ctx, "fitness tracker failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// run loads configuration and processes the configured sensor batch,
// writing reports to out.
func run(ctx context.Context, out io.Writer) error {
	log := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	log.Debug(ctx, "configuration loaded",
		logger.String("log_level", cfg.LogLevel),
		logger.Bool("metrics_summary", cfg.MetricsSummary),
		logger.Int("packages", len(cfg.Packages)),
	)

	svc := service.New(service.WithLogger(log))
	if err := svc.Run(ctx, cfg.TrainingPackages(), out); err != nil {
		return err
	}

	if cfg.MetricsSummary {
		logMetricsSummary(ctx, log)
	}
	return nil
}

func logMetricsSummary(ctx context.Context, log logger.Logger) {
	summary, err := metrics.Summary()
	if err != nil {
		log.Warn(ctx, "metrics summary unavailable", logger.Error(err))
		return
	}

	names := make([]string, 0, len(summary))
	for name := range summary {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]logger.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, logger.Float64(name, summary[name]))
	}
	log.Info(ctx, "metrics summary", fields...)
}

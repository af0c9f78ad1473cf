// Package service runs sensor batches through the training calculator and
// writes the resulting reports.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/okian/fittrack/internal/domain/report"
	"github.com/okian/fittrack/internal/domain/training"
	"github.com/okian/fittrack/pkg/logger"
	"github.com/okian/fittrack/pkg/metrics"
)

// Service processes sensor packages one at a time.
type Service struct {
	logger logger.Logger
	runID  string
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRunID tags every log entry with id instead of a generated one.
func WithRunID(id string) Option {
	return func(s *Service) {
		if id != "" {
			s.runID = id
		}
	}
}

// New constructs a Service. Without WithLogger the global logger is used,
// so logger.Init must have been called.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("service").With(logger.String("run_id", s.runID))
	return s
}

// RunID identifies this service's batch in logs.
func (s *Service) RunID() string {
	return s.runID
}

// Process reads a single package and summarizes it.
func (s *Service) Process(ctx context.Context, pkg training.Package) (report.Message, error) {
	t, err := training.ReadPackage(pkg)
	if err != nil {
		metrics.RecordError(errorReason(err))
		return report.Message{}, fmt.Errorf("read package: %w", err)
	}

	msg, err := t.Info()
	if err != nil {
		metrics.RecordError(errorReason(err))
		return report.Message{}, fmt.Errorf("summarize %s: %w", t.Kind.Code(), err)
	}
	metrics.RecordTraining(t.Kind.Code(), msg.Distance, msg.Calories)

	s.logger.Debug(ctx, "training summarized",
		logger.String("type", t.Kind.Code()),
		logger.Float64("distance_km", msg.Distance),
		logger.Float64("speed_kmh", msg.Speed),
		logger.Float64("calories", msg.Calories),
	)
	return msg, nil
}

// Run processes pkgs in order and writes one report line per package to w.
// The first failure stops the batch; lines already written stay written.
func (s *Service) Run(ctx context.Context, pkgs []training.Package, w io.Writer) error {
	start := time.Now()
	defer func() {
		metrics.RecordBatch(len(pkgs), float64(time.Since(start).Microseconds())/1000)
	}()

	s.logger.Info(ctx, "processing sensor batch", logger.Int("packages", len(pkgs)))

	for i, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("batch interrupted at package %d: %w", i, err)
		}

		msg, err := s.Process(ctx, pkg)
		if err != nil {
			s.logger.Error(ctx, "package failed",
				logger.Int("index", i),
				logger.String("type", pkg.Code),
				logger.Error(err),
			)
			return fmt.Errorf("package %d: %w", i, err)
		}

		if _, err := fmt.Fprintln(w, msg.String()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	s.logger.Info(ctx, "sensor batch done", logger.Int("packages", len(pkgs)))
	return nil
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownType):
		return "unknown_type"
	case errors.Is(err, training.ErrArgCount):
		return "arg_count"
	case errors.Is(err, training.ErrNotImplemented):
		return "not_implemented"
	default:
		return "other"
	}
}

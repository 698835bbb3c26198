package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter for search operations. Both are no-ops
// until the embedding program installs SDK providers.
var (
	tracer = otel.Tracer("crucible.search")
	meter  = otel.Meter("crucible.search")
)

// Metrics for search operations.
var (
	searchTotal    metric.Int64Counter
	searchLatency  metric.Float64Histogram
	statesExpanded metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		searchTotal, err = meter.Int64Counter(
			"crucible_search_total",
			metric.WithDescription("Total number of constrained searches"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		searchLatency, err = meter.Float64Histogram(
			"crucible_search_duration_seconds",
			metric.WithDescription("Duration of constrained searches"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		statesExpanded, err = meter.Int64Histogram(
			"crucible_states_expanded",
			metric.WithDescription("States finalized per search"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// startSpan opens the span covering one Search call.
func startSpan(ctx context.Context, regime Regime, height, width int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "search.Search",
		trace.WithAttributes(
			attribute.String("regime", regime.Name()),
			attribute.Int("grid.height", height),
			attribute.Int("grid.width", width),
			attribute.Int("run.min", regime.MinRun()),
			attribute.Int("run.max", regime.MaxRun()),
		),
	)
}

// recordSearch closes out span and records the metrics of one Search call.
func recordSearch(ctx context.Context, span trace.Span, regime string, res Result, err error, elapsed time.Duration) {
	outcome := "found"
	switch {
	case errors.Is(err, ErrBudgetExceeded):
		outcome = "budget_exceeded"
	case err != nil:
		outcome = "error"
	case !res.Found:
		outcome = "unreachable"
	}

	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int64("cost", res.Cost),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("pushed", res.Pushed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("regime", regime),
		attribute.String("outcome", outcome),
	)
	searchTotal.Add(ctx, 1, attrs)
	searchLatency.Record(ctx, elapsed.Seconds(), attrs)
	statesExpanded.Record(ctx, int64(res.Expanded), attrs)
}

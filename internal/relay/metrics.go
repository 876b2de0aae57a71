package relay

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/blockrelay/internal/relay"

// Failure stages reported on blockrelay.blocks.failed.
const (
	stageFetch  = "fetch"
	stageSubmit = "submit"
)

type metrics struct {
	relayed metric.Int64Counter
	failed  metric.Int64Counter
}

func newMetrics() metrics {
	meter := otel.Meter(instrumentationName)

	relayed, err := meter.Int64Counter("blockrelay.blocks.relayed",
		metric.WithDescription("Blocks whose data was submitted to the destination contract"))
	if err != nil {
		otel.Handle(err)
	}

	failed, err := meter.Int64Counter("blockrelay.blocks.failed",
		metric.WithDescription("Blocks skipped because of an error, by stage"))
	if err != nil {
		otel.Handle(err)
	}

	return metrics{
		relayed: relayed,
		failed:  failed,
	}
}

func (m metrics) fail(ctx context.Context, stage string) {
	m.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}

package headstream

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/gabapcia/blockrelay/internal/headstream"

type metrics struct {
	received   metric.Int64Counter
	dropped    metric.Int64Counter
	reconnects metric.Int64Counter
}

func newMetrics() metrics {
	meter := otel.Meter(meterName)

	received, err := meter.Int64Counter("blockrelay.heads.received",
		metric.WithDescription("New block headers received from the source node"))
	if err != nil {
		otel.Handle(err)
	}

	dropped, err := meter.Int64Counter("blockrelay.heads.dropped",
		metric.WithDescription("Headers dropped because the work queue was full"))
	if err != nil {
		otel.Handle(err)
	}

	reconnects, err := meter.Int64Counter("blockrelay.heads.reconnects",
		metric.WithDescription("Successful newHeads resubscriptions"))
	if err != nil {
		otel.Handle(err)
	}

	return metrics{
		received:   received,
		dropped:    dropped,
		reconnects: reconnects,
	}
}

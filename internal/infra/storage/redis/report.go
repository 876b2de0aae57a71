package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/blockrelay/internal/pkg/types"
	"github.com/gabapcia/blockrelay/internal/relay"
)

// ErrNoReport is returned by LastReport when nothing was relayed yet.
var ErrNoReport = errors.New("no relay report found")

const (
	fieldProcessingID     = "processing_id"
	fieldBlockNumber      = "block_number"
	fieldBlockHash        = "block_hash"
	fieldParentHash       = "parent_hash"
	fieldTransactionsRoot = "transactions_root"
	fieldTxHash           = "tx_hash"
	fieldRelayedAt        = "relayed_at"
)

// lastReportKey is the hash holding the newest report of a stream:
//
//	"<stream>:last"
func lastReportKey(stream string) string {
	return fmt.Sprintf("%s:last", stream)
}

func reportValues(r relay.Report) map[string]any {
	return map[string]any{
		fieldProcessingID:     r.ProcessingID.String(),
		fieldBlockNumber:      string(r.BlockNumber),
		fieldBlockHash:        r.Payload.BlockHash,
		fieldParentHash:       r.Payload.ParentHash,
		fieldTransactionsRoot: r.Payload.TransactionsRoot,
		fieldTxHash:           r.TxHash,
		fieldRelayedAt:        r.RelayedAt.UTC().Format(time.RFC3339Nano),
	}
}

func reportFromValues(values map[string]string) (relay.Report, error) {
	id, err := uuid.Parse(values[fieldProcessingID])
	if err != nil {
		return relay.Report{}, fmt.Errorf("decode %s: %w", fieldProcessingID, err)
	}

	relayedAt, err := time.Parse(time.RFC3339Nano, values[fieldRelayedAt])
	if err != nil {
		return relay.Report{}, fmt.Errorf("decode %s: %w", fieldRelayedAt, err)
	}

	return relay.Report{
		ProcessingID: id,
		BlockNumber:  types.Hex(values[fieldBlockNumber]),
		Payload: relay.Payload{
			BlockHash:        values[fieldBlockHash],
			ParentHash:       values[fieldParentHash],
			TransactionsRoot: values[fieldTransactionsRoot],
		},
		TxHash:    values[fieldTxHash],
		RelayedAt: relayedAt,
	}, nil
}

// NotifyBlockRelayed appends report to the stream and replaces the stream's
// last-report hash, both in one MULTI/EXEC.
func (c *client) NotifyBlockRelayed(ctx context.Context, report relay.Report) error {
	values := reportValues(report)

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		args := &redis.XAddArgs{
			Stream: c.stream,
			Values: values,
		}
		if c.streamLen > 0 {
			args.MaxLen = c.streamLen
			args.Approx = true
		}

		pipe.XAdd(ctx, args)
		pipe.HSet(ctx, lastReportKey(c.stream), values)
		return nil
	})

	return err
}

// LastReport returns the newest report written by NotifyBlockRelayed, or
// ErrNoReport.
func (c *client) LastReport(ctx context.Context) (relay.Report, error) {
	values, err := c.conn.HGetAll(ctx, lastReportKey(c.stream)).Result()
	if err != nil {
		return relay.Report{}, err
	}

	if len(values) == 0 {
		return relay.Report{}, ErrNoReport
	}

	return reportFromValues(values)
}

// Compile-time assertion to ensure client implements the ReportNotifier interface.
var _ relay.ReportNotifier = new(client)

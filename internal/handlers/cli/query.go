package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/gabapcia/blockrelay/internal/config"
	"github.com/gabapcia/blockrelay/internal/infra/blockchain/contract"
)

const (
	queryMethodGet     = "get"
	queryMethodLast    = "last"
	queryMethodRelayed = "relayed"
)

var (
	errUnknownQueryMethod = errors.New("unknown query method")
	errRedisNotConfigured = errors.New("redis.addr is not configured")
)

type blockDataOutput struct {
	BlockHash        string `json:"blockHash"`
	ParentHash       string `json:"parentHash"`
	TransactionsRoot string `json:"transactionsRoot"`
}

type reportOutput struct {
	ProcessingID string          `json:"processingId"`
	BlockNumber  string          `json:"blockNumber,omitempty"`
	Block        blockDataOutput `json:"block"`
	TxHash       string          `json:"txHash"`
	RelayedAt    time.Time       `json:"relayedAt"`
}

// queryCommand prints data stored by previous relays as JSON.
//
//	blockrelay query --method last
func queryCommand(b Builder) *cli.Command {
	return &cli.Command{
		Name:        "query",
		Description: "Reads the destination contract's getBlockData or lastBlockData, or the last relay report kept in Redis.",
		Usage:       "Prints stored block data as JSON.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "method",
				Usage: "one of get, last or relayed",
				Value: queryMethodLast,
				Validator: func(v string) error {
					switch v {
					case queryMethodGet, queryMethodLast, queryMethodRelayed:
						return nil
					default:
						return fmt.Errorf("%w: %q", errUnknownQueryMethod, v)
					}
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, shutdown, err := setup(ctx, c, b)
			if err != nil {
				return err
			}
			defer shutdown(context.WithoutCancel(ctx))

			var out any
			switch c.String("method") {
			case queryMethodRelayed:
				out, err = queryReport(ctx, b, cfg)
			default:
				out, err = queryContract(ctx, b, cfg, c.String("method"))
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func queryContract(ctx context.Context, b Builder, cfg config.Config, method string) (blockDataOutput, error) {
	if err := cfg.Destination.Validate(false); err != nil {
		return blockDataOutput{}, err
	}

	reader, err := b.ContractReader(cfg)
	if err != nil {
		return blockDataOutput{}, err
	}

	var data contract.BlockData
	if method == queryMethodGet {
		data, err = reader.GetBlockData(ctx)
	} else {
		data, err = reader.LastBlockData(ctx)
	}
	if err != nil {
		return blockDataOutput{}, err
	}

	return blockDataOutput(data), nil
}

func queryReport(ctx context.Context, b Builder, cfg config.Config) (reportOutput, error) {
	if !cfg.Redis.Enabled() {
		return reportOutput{}, errRedisNotConfigured
	}

	store, err := b.ReportStore(ctx, cfg)
	if err != nil {
		return reportOutput{}, err
	}
	defer store.Close()

	report, err := store.LastReport(ctx)
	if err != nil {
		return reportOutput{}, err
	}

	return reportOutput{
		ProcessingID: report.ProcessingID.String(),
		BlockNumber:  string(report.BlockNumber),
		Block:        blockDataOutput(report.Payload),
		TxHash:       report.TxHash,
		RelayedAt:    report.RelayedAt,
	}, nil
}

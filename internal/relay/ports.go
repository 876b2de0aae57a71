package relay

import "context"

// BlockFetcher retrieves full blocks from the source node.
type BlockFetcher interface {
	// FetchBlockByHash returns the block identified by hash, including its
	// transactions. ErrBlockNotFound is returned when the node has no such
	// block.
	FetchBlockByHash(ctx context.Context, hash string) (Block, error)
}

// Submitter writes payloads to the destination contract.
type Submitter interface {
	// StoreBlockData submits a transaction carrying payload and returns its
	// hash. It does not wait for the transaction to be mined.
	StoreBlockData(ctx context.Context, payload Payload) (string, error)
}

// ReportNotifier receives a Report for every relayed block.
type ReportNotifier interface {
	NotifyBlockRelayed(ctx context.Context, report Report) error
}

type nopReportNotifier struct{}

var _ ReportNotifier = nopReportNotifier{}

func (nopReportNotifier) NotifyBlockRelayed(context.Context, Report) error {
	return nil
}

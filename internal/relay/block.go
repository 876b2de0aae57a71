package relay

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gabapcia/blockrelay/internal/pkg/types"
)

// ErrBlockNotFound is returned by a BlockFetcher when the node has no block
// for the requested hash.
var ErrBlockNotFound = errors.New("block not found")

// Transaction is a source-chain transaction as seen by the relay. An empty To
// means the transaction created a contract.
type Transaction struct {
	Hash string
	From string
	To   string
}

// IsContractCreation reports whether the transaction has no recipient.
func (t Transaction) IsContractCreation() bool {
	return t.To == ""
}

// Block is a fully fetched source-chain block.
type Block struct {
	Number           types.Hex
	Hash             string
	ParentHash       string
	TransactionsRoot string
	Transactions     []Transaction
}

// Payload holds the fields written to the destination contract.
type Payload struct {
	BlockHash        string
	ParentHash       string
	TransactionsRoot string
}

// Report describes a block successfully relayed to the destination chain.
type Report struct {
	ProcessingID uuid.UUID
	BlockNumber  types.Hex
	Payload      Payload
	TxHash       string
	RelayedAt    time.Time
}

func newReport(block Block, payload Payload, txHash string) Report {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return Report{
		ProcessingID: id,
		BlockNumber:  block.Number,
		Payload:      payload,
		TxHash:       txHash,
		RelayedAt:    time.Now().UTC(),
	}
}

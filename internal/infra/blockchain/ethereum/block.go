package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/pkg/types"
	"github.com/gabapcia/blockrelay/internal/relay"
)

type (
	// TransactionResponse is the subset of a transaction object the relay reads.
	// To is null for contract creations.
	TransactionResponse struct {
		Hash string  `json:"hash"`
		From string  `json:"from"`
		To   *string `json:"to"`
	}

	// BlockResponse is the subset of eth_getBlockByHash's result the relay reads.
	BlockResponse struct {
		Number           types.Hex             `json:"number"`
		Hash             string                `json:"hash"`
		ParentHash       string                `json:"parentHash"`
		TransactionsRoot string                `json:"transactionsRoot"`
		Transactions     []TransactionResponse `json:"transactions"`
	}
)

func (t TransactionResponse) toRelayTransaction() relay.Transaction {
	var to string
	if t.To != nil {
		to = *t.To
	}

	return relay.Transaction{
		Hash: t.Hash,
		From: t.From,
		To:   to,
	}
}

func (b BlockResponse) toRelayBlock() relay.Block {
	transactions := make([]relay.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toRelayTransaction()
	}

	return relay.Block{
		Number:           b.Number,
		Hash:             b.Hash,
		ParentHash:       b.ParentHash,
		TransactionsRoot: b.TransactionsRoot,
		Transactions:     transactions,
	}
}

// isEmptyResult reports whether a JSON-RPC result is absent or null.
func isEmptyResult(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// FetchBlockByHash calls eth_getBlockByHash with full transaction objects.
// An absent or null result yields relay.ErrBlockNotFound.
func (c *client) FetchBlockByHash(ctx context.Context, hash string) (relay.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByHash", hash, true)
	if err != nil {
		return relay.Block{}, err
	}

	if isEmptyResult(data) {
		return relay.Block{}, fmt.Errorf("%w: %s", relay.ErrBlockNotFound, hash)
	}

	var block BlockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return relay.Block{}, fmt.Errorf("decode block %s: %w", hash, err)
	}

	return block.toRelayBlock(), nil
}

package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/blockrelay/internal/pkg/logger"
	"github.com/gabapcia/blockrelay/internal/relay"
)

var _ relay.Submitter = (*contract)(nil)

// StoreBlockData signs a legacy transaction calling
// storeBlockData(blockHash, parentHash, transactionsRoot) and sends it to the
// destination node. It returns the transaction hash without waiting for
// inclusion.
func (c *contract) StoreBlockData(ctx context.Context, payload relay.Payload) (string, error) {
	if c.key == nil {
		return "", ErrSignerNotConfigured
	}

	backend, err := c.connect(ctx)
	if err != nil {
		return "", err
	}
	defer backend.Close()

	data, err := c.abi.Pack(methodStoreBlockData, payload.BlockHash, payload.ParentHash, payload.TransactionsRoot)
	if err != nil {
		return "", fmt.Errorf("pack %s: %w", methodStoreBlockData, err)
	}

	nonce, err := backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return "", fmt.Errorf("pending nonce: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.address,
		Value:    big.NewInt(0),
		Gas:      c.gasLimit,
		GasPrice: c.gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, c.signer, c.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	logger.Debug(ctx, "storeBlockData sent",
		"tx.hash", signed.Hash().Hex(),
		"tx.nonce", nonce,
		"tx.from", c.from.Hex(),
	)

	return signed.Hash().Hex(), nil
}

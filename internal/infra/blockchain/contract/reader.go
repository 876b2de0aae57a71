package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// BlockData is a record stored by the contract.
type BlockData struct {
	BlockHash        string
	ParentHash       string
	TransactionsRoot string
}

// Reader exposes the contract's view methods.
type Reader interface {
	// GetBlockData calls getBlockData().
	GetBlockData(ctx context.Context) (BlockData, error)

	// LastBlockData calls lastBlockData().
	LastBlockData(ctx context.Context) (BlockData, error)
}

var _ Reader = (*contract)(nil)

func (c *contract) call(ctx context.Context, method string) ([]any, error) {
	backend, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	data, err := c.abi.Pack(method)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	res, err := backend.CallContract(ctx, ethereum.CallMsg{From: c.from, To: &c.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoContractCode, c.address.Hex())
	}

	out, err := c.abi.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return out, nil
}

func (c *contract) GetBlockData(ctx context.Context) (BlockData, error) {
	out, err := c.call(ctx, methodGetBlockData)
	if err != nil {
		return BlockData{}, err
	}

	return *abi.ConvertType(out[0], new(BlockData)).(*BlockData), nil
}

func (c *contract) LastBlockData(ctx context.Context) (BlockData, error) {
	out, err := c.call(ctx, methodLastBlockData)
	if err != nil {
		return BlockData{}, err
	}

	return BlockData{
		BlockHash:        *abi.ConvertType(out[0], new(string)).(*string),
		ParentHash:       *abi.ConvertType(out[1], new(string)).(*string),
		TransactionsRoot: *abi.ConvertType(out[2], new(string)).(*string),
	}, nil
}

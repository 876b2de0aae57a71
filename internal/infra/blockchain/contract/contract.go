// Package contract talks to the BlockDataStorage contract on the destination
// chain: it signs and submits storeBlockData transactions and reads the
// stored data back.
//
// Every call opens a fresh connection, checks the node's chain id and closes
// the connection when done.
package contract

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	// ErrDestinationUnavailable is returned when the destination node cannot
	// be reached or does not answer the chain id query.
	ErrDestinationUnavailable = errors.New("destination node unavailable")

	// ErrChainIDMismatch is returned when the destination node reports a chain
	// id different from the configured one.
	ErrChainIDMismatch = errors.New("chain id mismatch")

	// ErrInvalidAddress is returned by New for a malformed contract address.
	ErrInvalidAddress = errors.New("invalid contract address")

	// ErrInvalidPrivateKey is returned by New for a malformed signing key.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrSignerNotConfigured is returned by StoreBlockData when no private
	// key was configured.
	ErrSignerNotConfigured = errors.New("signer not configured")

	// ErrNoContractCode is returned when a view call yields no data, which
	// is what a node answers for an address without code.
	ErrNoContractCode = errors.New("no contract code at address")
)

// Config describes the destination chain and contract.
type Config struct {
	Endpoint    string        // destination node JSON-RPC endpoint
	Address     string        // BlockDataStorage address
	PrivateKey  string        // hex secp256k1 key, optional for read-only use
	ChainID     uint64        // expected chain id, also used for EIP-155 signing
	GasLimit    uint64        // gas limit of storeBlockData transactions
	GasPrice    uint64        // gas price in wei
	DialTimeout time.Duration // bound for dial and chain id check, 0 means none
}

type contract struct {
	abi         abi.ABI
	endpoint    string
	address     common.Address
	key         *ecdsa.PrivateKey
	from        common.Address
	chainID     *big.Int
	signer      types.Signer
	gasLimit    uint64
	gasPrice    *big.Int
	dialTimeout time.Duration
	dial        Dialer
}

type config struct {
	dial Dialer
}

// Option configures New.
type Option func(*config)

// WithDialer replaces the ethclient based Dialer.
func WithDialer(d Dialer) Option {
	return func(c *config) {
		c.dial = d
	}
}

// New validates cfg and returns a contract client.
func New(cfg Config, opts ...Option) (*contract, error) {
	c := config{dial: DialEthclient}
	for _, opt := range opts {
		opt(&c)
	}

	parsed, err := parsedABI()
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}

	if !common.IsHexAddress(cfg.Address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, cfg.Address)
	}

	chainID := new(big.Int).SetUint64(cfg.ChainID)

	ct := &contract{
		abi:         parsed,
		endpoint:    cfg.Endpoint,
		address:     common.HexToAddress(cfg.Address),
		chainID:     chainID,
		signer:      types.NewEIP155Signer(chainID),
		gasLimit:    cfg.GasLimit,
		gasPrice:    new(big.Int).SetUint64(cfg.GasPrice),
		dialTimeout: cfg.DialTimeout,
		dial:        c.dial,
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
		}

		ct.key = key
		ct.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	return ct, nil
}

// connect dials the destination and checks its chain id. The caller must
// close the returned Backend.
func (c *contract) connect(ctx context.Context) (Backend, error) {
	checkCtx := ctx
	if c.dialTimeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, c.dialTimeout)
		defer cancel()
	}

	backend, err := c.dial(checkCtx, c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}

	chainID, err := backend.ChainID(checkCtx)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("%w: %w", ErrDestinationUnavailable, err)
	}

	if chainID.Cmp(c.chainID) != 0 {
		backend.Close()
		return nil, fmt.Errorf("%w: node reports %s, configured %s", ErrChainIDMismatch, chainID, c.chainID)
	}

	return backend, nil
}

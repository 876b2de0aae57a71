package contract

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract methods.
const (
	methodStoreBlockData = "storeBlockData"
	methodGetBlockData   = "getBlockData"
	methodLastBlockData  = "lastBlockData"
)

//go:embed block_data_storage.abi.json
var blockDataStorageABI []byte

// parsedABI parses the embedded BlockDataStorage ABI once.
var parsedABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(bytes.NewReader(blockDataStorageABI))
})

package relay

// Transform extracts the relayed fields from block. Values are copied
// verbatim, no normalization is applied.
func Transform(block Block) Payload {
	return Payload{
		BlockHash:        block.Hash,
		ParentHash:       block.ParentHash,
		TransactionsRoot: block.TransactionsRoot,
	}
}

package domain

// TransferEvent is a single NFT transfer reported by the ledger indexer.
type TransferEvent struct {
	ContractAddress Address     `json:"contractAddress"`
	BlockNumber     BlockNumber `json:"blockNumber"`
	TxHash          TxHash      `json:"txHash"`
	From            Address     `json:"from"`
	To              Address     `json:"to"`
	TokenId         TokenId     `json:"tokenId"`
}

package etherscan

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/holdergate/goapi/service/providers"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrResponseNotOk   = errors.New("etherscan response status != 1")
)

// Client is both an ownership provider (holdings replayed from transfer
// history) and the ledger indexer backing on-chain re-verification.
type Client interface {
	providers.Provider
	providers.Ledger
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	Apikey     string
}

type apiResp struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	// Result is a transaction list on success and an error string on
	// failure, so it is decoded lazily.
	Result json.RawMessage `json:"result"`
}

type tokenTx struct {
	BlockNumber     string `json:"blockNumber"`
	Hash            string `json:"hash"`
	From            string `json:"from"`
	To              string `json:"to"`
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenID"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenValue      string `json:"tokenValue"`
}

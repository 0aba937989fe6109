package providers

import (
	"fmt"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/nft"
)

// Provider translates one data source's wire format into ownership
// records. Zero NFTs is a valid empty success, never an error.
type Provider interface {
	Name() nft.Source
	FetchOwnedNFTs(c ctx.Ctx, owner domain.Address, allowlist []domain.Address) ([]*nft.Record, error)
}

// Ledger answers transfer-history queries against a ledger-indexing
// provider, used for independent on-chain re-verification. tokenType
// selects the transfer index to scan, since 721 and 1155 transfers are
// indexed separately.
type Ledger interface {
	GetTransferHistory(c ctx.Ctx, owner domain.Address, contract domain.Address, tokenType domain.TokenType) ([]domain.TransferEvent, error)
}

// ProviderError marks a recoverable provider failure; the resolver falls
// back to the next adapter in priority order.
type ProviderError struct {
	Provider   nft.Source
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// WrapErr builds a ProviderError. statusCode is 0 for transport-level
// failures and timeouts.
func WrapErr(provider nft.Source, statusCode int, err error) *ProviderError {
	return &ProviderError{Provider: provider, StatusCode: statusCode, Err: err}
}

package ownership

import (
	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/nft"
)

// ResolveResult is the outcome of a direct-ownership resolution: the
// first provider to return a full result set wins, there is no merging
// across providers.
type ResolveResult struct {
	Records []*nft.Record
	Source  nft.Source
	// Failed lists providers that errored or were rate limited before
	// Source succeeded.
	Failed []nft.Source
}

type Usecase interface {
	// ResolveOwned fetches the wallet's directly owned NFTs from the first
	// healthy provider in priority order. Returns
	// domain.ErrAllProvidersFailed when no provider succeeds.
	ResolveOwned(c ctx.Ctx, owner domain.Address) (*ResolveResult, error)
	// VerifyOnChain annotates records with independent transfer-history
	// evidence. Verification failures are non-fatal; affected records are
	// kept with Verified false.
	VerifyOnChain(c ctx.Ctx, owner domain.Address, records []*nft.Record)
}

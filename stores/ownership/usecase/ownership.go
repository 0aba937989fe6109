package usecase

import (
	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/log"
	"github.com/holdergate/goapi/base/metrics"
	"github.com/holdergate/goapi/base/ratelimit"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/collection"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/domain/ownership"
	"github.com/holdergate/goapi/service/providers"
)

type OwnershipUsecaseCfg struct {
	// Providers are tried in priority order; the first full success wins.
	Providers  []providers.Provider
	Ledger     providers.Ledger
	Registry   collection.Registry
	Limiter    *ratelimit.SlidingWindow
	ChainPacer *ratelimit.Pacer
}

type impl struct {
	providers []providers.Provider
	ledger    providers.Ledger
	registry  collection.Registry
	limiter   *ratelimit.SlidingWindow
	pacer     *ratelimit.Pacer
	metrics   metrics.Service
}

func New(cfg *OwnershipUsecaseCfg) ownership.Usecase {
	return &impl{
		providers: cfg.Providers,
		ledger:    cfg.Ledger,
		registry:  cfg.Registry,
		limiter:   cfg.Limiter,
		pacer:     cfg.ChainPacer,
		metrics:   metrics.New("ownership"),
	}
}

func (im *impl) ResolveOwned(c ctx.Ctx, owner domain.Address) (*ownership.ResolveResult, error) {
	allowlist := im.registry.Allowlist(c)
	failed := []nft.Source{}

	for _, p := range im.providers {
		name := p.Name()
		key := string(name)

		if !im.limiter.Allowed(key) {
			c.WithField("provider", name).Warn("provider over budget, skipping")
			im.metrics.BumpSum("provider.skipped", 1, "provider", key)
			failed = append(failed, name)
			continue
		}
		im.limiter.Record(key)

		records, err := p.FetchOwnedNFTs(c, owner, allowlist)
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"provider": name,
				"owner":    owner,
			}).Error("provider.FetchOwnedNFTs failed")
			im.metrics.BumpSum("provider.err", 1, "provider", key)
			failed = append(failed, name)
			continue
		}

		for _, record := range records {
			record.VerificationSource = name
			record.OwnershipContext = nft.OwnershipContextDirect
		}

		return &ownership.ResolveResult{
			Records: records,
			Source:  name,
			Failed:  failed,
		}, nil
	}

	c.WithField("owner", owner).Error("all providers failed")
	im.metrics.BumpSum("provider.all_failed", 1)
	return nil, domain.ErrAllProvidersFailed
}

func (im *impl) VerifyOnChain(c ctx.Ctx, owner domain.Address, records []*nft.Record) {
	for _, record := range records {
		if err := im.pacer.Wait(c); err != nil {
			c.WithField("err", err).Warn("chain verification cancelled")
			return
		}

		events, err := im.ledger.GetTransferHistory(c, owner, record.ContractAddress, record.TokenType)
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"owner":    owner,
				"contract": record.ContractAddress,
			}).Warn("ledger.GetTransferHistory failed")
			record.ChainVerification = &nft.ChainVerification{}
			continue
		}

		record.ChainVerification = verifyAgainstHistory(owner, record, events)
	}
}

// verifyAgainstHistory replays the wallet's transfer history for the
// record's token. The record is verified once a transfer to the wallet
// exists for the token, and confirmed when its most recent transfer
// moved it to the wallet. A history without the token leaves the record
// unverified.
func verifyAgainstHistory(owner domain.Address, record *nft.Record, events []domain.TransferEvent) *nft.ChainVerification {
	v := &nft.ChainVerification{}

	for _, ev := range events {
		if ev.TokenId != record.TokenId || !ev.ContractAddress.Equals(record.ContractAddress) {
			continue
		}
		if ev.To.Equals(owner) {
			v.Verified = true
		}
		if ev.BlockNumber < v.LastTransferBlock {
			continue
		}
		v.LastTransferBlock = ev.BlockNumber
		v.LastTransferHash = ev.TxHash
		v.OwnershipConfirmed = ev.To.Equals(owner)
	}

	return v
}

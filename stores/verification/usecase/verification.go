package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/goroutine"
	"github.com/holdergate/goapi/base/log"
	"github.com/holdergate/goapi/base/metrics"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/collection"
	"github.com/holdergate/goapi/domain/delegation"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/domain/ownership"
	"github.com/holdergate/goapi/domain/verification"
)

type VerificationUsecaseCfg struct {
	Ownership  ownership.Usecase
	Delegation delegation.Usecase
	Registry   collection.Registry
	CacheRepo  verification.CacheRepo
	ChainId    domain.ChainId
	CacheTtl   time.Duration
}

type impl struct {
	ownership  ownership.Usecase
	delegation delegation.Usecase
	registry   collection.Registry
	cacheRepo  verification.CacheRepo
	chainId    domain.ChainId
	cacheTtl   time.Duration
	metrics    metrics.Service
	now        func() time.Time
	newId      func() string
}

func New(cfg *VerificationUsecaseCfg) verification.Usecase {
	return &impl{
		ownership:  cfg.Ownership,
		delegation: cfg.Delegation,
		registry:   cfg.Registry,
		cacheRepo:  cfg.CacheRepo,
		chainId:    cfg.ChainId,
		cacheTtl:   cfg.CacheTtl,
		metrics:    metrics.New("verification"),
		now:        time.Now,
		newId:      func() string { return uuid.New().String() },
	}
}

func (im *impl) Verify(c ctx.Ctx, wallet domain.Address) (*verification.Result, error) {
	defer im.metrics.BumpTime("verify.time").End()

	start := im.now()
	wallet = wallet.ToLower()

	grants, err := im.delegation.GetGrants(c, wallet)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "wallet": wallet}).Warn("grant discovery failed")
		grants = nil
	}
	fingerprint := verification.Fingerprint(grants)

	meta := &verification.ChainMetadata{ChainId: im.chainId, RequestId: im.newId()}

	if entry, err := im.cacheRepo.Get(c, wallet, fingerprint); err == nil {
		im.metrics.BumpSum("cache.hit", 1)
		// replay the memoized run untouched so consecutive in-TTL calls
		// answer identically
		meta.RequestId = entry.RequestId
		return im.buildResult(c, entry.Data, entry.SourcesUsed, delegation.Summarize(grants), meta, entry.VerificationTimeMs), nil
	} else if err != domain.ErrNotFound {
		c.WithFields(log.Fields{"err": err, "wallet": wallet}).Warn("cache lookup failed")
	}

	var (
		wg        sync.WaitGroup
		direct    *ownership.ResolveResult
		directErr error
		delegated []*nft.Record
		summary   *delegation.Summary
	)

	wg.Add(2)
	goroutine.RecoverableGo(func() {
		direct, directErr = im.ownership.ResolveOwned(c, wallet)
		if directErr == nil {
			im.ownership.VerifyOnChain(c, wallet, direct.Records)
		}
	}, goroutine.WithAfterEnded(wg.Done))
	goroutine.RecoverableGo(func() {
		var err error
		delegated, summary, err = im.delegation.ResolveDelegatedNFTs(c, wallet, grants)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "wallet": wallet}).Warn("delegation resolution failed")
			delegated, summary = nil, nil
		}
	}, goroutine.WithAfterEnded(wg.Done))
	wg.Wait()

	if directErr == nil && direct == nil {
		directErr = domain.ErrInternalServerError
	}

	if directErr != nil {
		stale, staleErr := im.cacheRepo.GetStale(c, wallet)
		if staleErr != nil {
			return nil, directErr
		}
		im.metrics.BumpSum("cache.stale", 1)
		meta.Stale = true
		sources := appendSource(stale.SourcesUsed, nft.SourceCache)
		return im.buildResult(c, stale.Data, sources, delegation.Summarize(grants), meta, im.now().Sub(start).Milliseconds()), nil
	}

	records := dedupe(append(append([]*nft.Record{}, direct.Records...), delegated...))
	if len(direct.Failed) > 0 {
		meta.LowConfidence = true
	}
	sources := recordSources(records, direct.Source)
	elapsedMs := im.now().Sub(start).Milliseconds()

	entry := &verification.CacheEntry{
		Data:                         records,
		Timestamp:                    im.now(),
		SourcesUsed:                  sources,
		RequestId:                    meta.RequestId,
		VerificationTimeMs:           elapsedMs,
		DelegationContextFingerprint: fingerprint,
		ExpiresAt:                    im.now().Add(im.cacheTtl),
	}
	if err := im.cacheRepo.Set(c, wallet, entry); err != nil {
		c.WithFields(log.Fields{"err": err, "wallet": wallet}).Warn("cache write failed")
	}

	return im.buildResult(c, records, sources, summary, meta, elapsedMs), nil
}

func (im *impl) GetAccessLevel(c ctx.Ctx, wallet domain.Address) (verification.AccessLevel, error) {
	res, err := im.Verify(c, wallet)
	if err != nil {
		return verification.AccessLevelNone, err
	}
	return res.AccessLevel, nil
}

func (im *impl) buildResult(c ctx.Ctx, records []*nft.Record, sources []nft.Source, summary *delegation.Summary, meta *verification.ChainMetadata, elapsedMs int64) *verification.Result {
	var (
		directs     = []*nft.Record{}
		delegated   = []*nft.Record{}
		collections = []domain.Address{}
		seen        = map[domain.Address]bool{}
		verified    = 0
	)

	for _, record := range records {
		if record.OwnershipContext == nft.OwnershipContextDelegated {
			delegated = append(delegated, record)
		} else {
			directs = append(directs, record)
		}
		contract := record.ContractAddress.ToLower()
		if !seen[contract] {
			seen[contract] = true
			collections = append(collections, contract)
		}
		if record.ChainVerification != nil && record.ChainVerification.OwnershipConfirmed {
			verified++
		}
	}

	res := &verification.Result{
		Collections:         collections,
		AccessLevel:         im.accessLevel(c, records),
		TotalNFTs:           len(records),
		NftDetails:          records,
		VerificationSources: sources,
		BlockchainVerified:  verified,
		DirectNFTs:          directs,
		DelegatedNFTs:       delegated,
		VerificationTimeMs:  elapsedMs,
		ChainMetadata:       meta,
	}
	// a summary without a single resolved delegation says nothing
	if summary != nil && summary.TotalGrants > 0 && len(delegated) > 0 {
		res.DelegationSummary = summary
	}
	return res
}

// accessLevel scans tiers from highest to lowest and returns the first
// whose per-collection minimums the combined holdings satisfy.
func (im *impl) accessLevel(c ctx.Ctx, records []*nft.Record) verification.AccessLevel {
	if len(records) == 0 {
		return verification.AccessLevelNone
	}

	counts := map[domain.Address]int{}
	for _, record := range records {
		counts[record.ContractAddress.ToLower()]++
	}

	for _, tier := range im.registry.Tiers(c) {
		if meets(counts, tier.Minimums) {
			return tier.Level
		}
	}
	return verification.AccessLevelNone
}

func meets(counts map[domain.Address]int, minimums map[domain.Address]int) bool {
	for contract, min := range minimums {
		if counts[contract.ToLower()] < min {
			return false
		}
	}
	return true
}

func dedupe(records []*nft.Record) []*nft.Record {
	seen := map[nft.Id]bool{}
	out := make([]*nft.Record, 0, len(records))
	for _, record := range records {
		id := record.Id()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, record)
	}
	return out
}

func recordSources(records []*nft.Record, primary nft.Source) []nft.Source {
	sources := []nft.Source{primary}
	seen := map[nft.Source]bool{primary: true}
	for _, record := range records {
		if record.VerificationSource == "" || seen[record.VerificationSource] {
			continue
		}
		seen[record.VerificationSource] = true
		sources = append(sources, record.VerificationSource)
	}
	return sources
}

func appendSource(sources []nft.Source, s nft.Source) []nft.Source {
	out := append([]nft.Source{}, sources...)
	for _, existing := range out {
		if existing == s {
			return out
		}
	}
	return append(out, s)
}

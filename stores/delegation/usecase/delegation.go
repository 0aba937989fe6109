package usecase

import (
	"sync"
	"time"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/goroutine"
	"github.com/holdergate/goapi/base/log"
	"github.com/holdergate/goapi/base/metrics"
	"github.com/holdergate/goapi/base/ratelimit"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/delegation"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/domain/ownership"
	"github.com/holdergate/goapi/service/cache"
	"github.com/holdergate/goapi/service/delegateregistry"
)

type DelegationUsecaseCfg struct {
	Registry       delegateregistry.Client
	Ownership      ownership.Usecase
	DiscoveryCache cache.Service
	CheckPacer     *ratelimit.Pacer
}

type impl struct {
	registry  delegateregistry.Client
	ownership ownership.Usecase
	cache     cache.Service
	pacer     *ratelimit.Pacer
	metrics   metrics.Service
	now       func() time.Time
}

func New(cfg *DelegationUsecaseCfg) delegation.Usecase {
	return &impl{
		registry:  cfg.Registry,
		ownership: cfg.Ownership,
		cache:     cfg.DiscoveryCache,
		pacer:     cfg.CheckPacer,
		metrics:   metrics.New("delegation"),
		now:       time.Now,
	}
}

func (im *impl) GetGrants(c ctx.Ctx, delegate domain.Address) ([]delegation.Grant, error) {
	grants := []delegation.Grant{}
	err := im.cache.GetByFunc(c, delegate.ToLowerStr(), &grants, func() (interface{}, error) {
		discovered, err := im.registry.GetDelegatesForDelegate(c, delegate)
		if err != nil {
			return nil, err
		}
		active := im.dropExpired(discovered)
		return &active, nil
	})
	if err != nil {
		// a wallet without reachable delegations still verifies on its
		// direct holdings
		c.WithFields(log.Fields{
			"err":      err,
			"delegate": delegate,
		}).Warn("delegation discovery failed, continuing without grants")
		im.metrics.BumpSum("discovery.err", 1)
		return []delegation.Grant{}, nil
	}
	return grants, nil
}

func (im *impl) dropExpired(grants []delegation.Grant) []delegation.Grant {
	active := make([]delegation.Grant, 0, len(grants))
	for _, g := range grants {
		if g.ExpiresAt != nil && !g.ExpiresAt.After(im.now()) {
			continue
		}
		active = append(active, g)
	}
	return active
}

func (im *impl) ResolveDelegatedNFTs(c ctx.Ctx, delegate domain.Address, grants []delegation.Grant) ([]*nft.Record, *delegation.Summary, error) {
	if len(grants) == 0 {
		return []*nft.Record{}, emptySummary(), nil
	}

	byVault := map[domain.Address][]delegation.Grant{}
	for _, g := range grants {
		vault := g.Vault.ToLower()
		byVault[vault] = append(byVault[vault], g)
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		records []*nft.Record
	)

	for vault, vaultGrants := range byVault {
		vault, vaultGrants := vault, vaultGrants
		wg.Add(1)
		goroutine.RecoverableGo(func() {
			confirmed := im.resolveVault(c, delegate, vault, vaultGrants)
			mu.Lock()
			records = append(records, confirmed...)
			mu.Unlock()
		}, goroutine.WithAfterEnded(wg.Done))
	}
	wg.Wait()

	return records, delegation.Summarize(grants), nil
}

// resolveVault narrows one vault's holdings to the tokens a grant covers
// and the registry individually confirms, then chain-verifies the
// admitted records against the vault's transfer history. Candidates that
// fail a test are dropped without failing the resolution.
func (im *impl) resolveVault(c ctx.Ctx, delegate, vault domain.Address, grants []delegation.Grant) []*nft.Record {
	res, err := im.ownership.ResolveOwned(c, vault)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"vault": vault,
		}).Warn("vault holdings unavailable, skipping vault")
		im.metrics.BumpSum("vault.err", 1)
		return nil
	}

	confirmed := []*nft.Record{}
	for _, record := range res.Records {
		grant := coveringGrant(grants, record)
		if grant == nil {
			continue
		}

		ok, err := im.checkGrant(c, delegate, vault, record)
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"vault":    vault,
				"contract": record.ContractAddress,
				"tokenId":  record.TokenId,
			}).Warn("grant check failed, dropping candidate")
			im.metrics.BumpSum("check.err", 1)
			continue
		}
		if !ok {
			continue
		}

		record.OwnershipContext = nft.OwnershipContextDelegated
		record.DelegationInfo = &nft.DelegationInfo{
			DelegateWallet: delegate,
			VaultWallet:    vault,
			DelegationType: grant.Type,
		}
		confirmed = append(confirmed, record)
	}

	if len(confirmed) > 0 {
		// the vault is the on-chain holder, so its history is the one to
		// replay
		im.ownership.VerifyOnChain(c, vault, confirmed)
	}
	return confirmed
}

func (im *impl) checkGrant(c ctx.Ctx, delegate, vault domain.Address, record *nft.Record) (bool, error) {
	if err := im.pacer.Wait(c); err != nil {
		return false, err
	}
	switch record.TokenType {
	case domain.TokenType721:
		return im.registry.CheckDelegateForERC721(c, delegate, vault, record.ContractAddress, record.TokenId)
	case domain.TokenType1155:
		return im.registry.CheckDelegateForERC1155(c, delegate, vault, record.ContractAddress, record.TokenId)
	default:
		return false, domain.ErrUnsupportedTokenType
	}
}

// coveringGrant returns the broadest grant admitting the record, nil if
// none does.
func coveringGrant(grants []delegation.Grant, record *nft.Record) *delegation.Grant {
	var found *delegation.Grant
	for i := range grants {
		g := &grants[i]
		if !g.Covers(record.ContractAddress, record.TokenId) {
			continue
		}
		if found == nil || broader(g.Type, found.Type) {
			found = g
		}
	}
	return found
}

var typeBreadth = map[domain.DelegationType]int{
	domain.DelegationTypeToken:    0,
	domain.DelegationTypeContract: 1,
	domain.DelegationTypeAll:      2,
}

func broader(a, b domain.DelegationType) bool {
	return typeBreadth[a] > typeBreadth[b]
}

func emptySummary() *delegation.Summary {
	return &delegation.Summary{
		GrantsByType: map[domain.DelegationType]int{},
		Vaults:       []domain.Address{},
	}
}

package repository

import (
	"time"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/verification"
	"github.com/holdergate/goapi/service/cache"
)

// cacheRepo keeps one entry per wallet. The backing cache's physical
// TTL outlives CacheEntry.ExpiresAt so that GetStale can serve an
// expired entry when every upstream is down.
type cacheRepo struct {
	cache cache.Service
	now   func() time.Time
}

func NewCacheRepo(c cache.Service) verification.CacheRepo {
	return &cacheRepo{cache: c, now: time.Now}
}

func (im *cacheRepo) Get(c ctx.Ctx, wallet domain.Address, fingerprint string) (*verification.CacheEntry, error) {
	entry, err := im.load(c, wallet)
	if err != nil {
		return nil, err
	}
	if entry.DelegationContextFingerprint != fingerprint {
		return nil, domain.ErrNotFound
	}
	if im.now().After(entry.ExpiresAt) {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (im *cacheRepo) GetStale(c ctx.Ctx, wallet domain.Address) (*verification.CacheEntry, error) {
	return im.load(c, wallet)
}

func (im *cacheRepo) Set(c ctx.Ctx, wallet domain.Address, entry *verification.CacheEntry) error {
	return im.cache.Set(c, wallet.ToLowerStr(), entry)
}

func (im *cacheRepo) load(c ctx.Ctx, wallet domain.Address) (*verification.CacheEntry, error) {
	entry := &verification.CacheEntry{}
	if err := im.cache.Get(c, wallet.ToLowerStr(), entry); err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return entry, nil
}

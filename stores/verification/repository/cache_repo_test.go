package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/keys"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/domain/verification"
	"github.com/holdergate/goapi/service/cache"
	"github.com/holdergate/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	now     time.Time
	subject *cacheRepo
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.now = time.Now()
	t.subject = &cacheRepo{
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   keys.PfxVerification,
			Cache: primitive.NewPrimitive("test", 1),
		}),
		now: func() time.Time { return t.now },
	}
}

func (t *testsuite) entry(fingerprint string, expiresAt time.Time) *verification.CacheEntry {
	return &verification.CacheEntry{
		Data:                         []*nft.Record{{TokenId: "1", ContractAddress: "0xc0ffee"}},
		Timestamp:                    t.now,
		SourcesUsed:                  []nft.Source{nft.SourceAlchemy},
		DelegationContextFingerprint: fingerprint,
		ExpiresAt:                    expiresAt,
	}
}

func (t *testsuite) TestGetHit() {
	wallet := domain.Address("0xDEF1")

	t.NoError(t.subject.Set(mockCtx, wallet, t.entry("fp", t.now.Add(time.Minute))))

	got, err := t.subject.Get(mockCtx, wallet.ToLower(), "fp")
	t.NoError(err)
	t.Len(got.Data, 1)
	t.Equal([]nft.Source{nft.SourceAlchemy}, got.SourcesUsed)
}

func (t *testsuite) TestGetMissing() {
	_, err := t.subject.Get(mockCtx, "0xdef1", "fp")
	t.ErrorIs(err, domain.ErrNotFound)

	_, err = t.subject.GetStale(mockCtx, "0xdef1")
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *testsuite) TestGetFingerprintMismatch() {
	wallet := domain.Address("0xdef1")

	t.NoError(t.subject.Set(mockCtx, wallet, t.entry("fp", t.now.Add(time.Minute))))

	_, err := t.subject.Get(mockCtx, wallet, "other")
	t.ErrorIs(err, domain.ErrNotFound)
}

func (t *testsuite) TestExpiredServedOnlyAsStale() {
	wallet := domain.Address("0xdef1")

	t.NoError(t.subject.Set(mockCtx, wallet, t.entry("fp", t.now.Add(time.Minute))))
	t.now = t.now.Add(2 * time.Minute)

	_, err := t.subject.Get(mockCtx, wallet, "fp")
	t.ErrorIs(err, domain.ErrNotFound)

	stale, err := t.subject.GetStale(mockCtx, wallet)
	t.NoError(err)
	t.Len(stale.Data, 1)
}

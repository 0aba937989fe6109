package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/metrics"
	"github.com/holdergate/goapi/base/ratelimit"
	"github.com/holdergate/goapi/domain"
	mockCollection "github.com/holdergate/goapi/domain/collection/mocks"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/service/providers"
	mockProviders "github.com/holdergate/goapi/service/providers/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockAlchemy  *mockProviders.Provider
	mockMoralis  *mockProviders.Provider
	mockLedger   *mockProviders.Ledger
	mockRegistry *mockCollection.Registry
	limiter      *ratelimit.SlidingWindow
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockAlchemy = &mockProviders.Provider{}
	t.mockMoralis = &mockProviders.Provider{}
	t.mockLedger = &mockProviders.Ledger{}
	t.mockRegistry = &mockCollection.Registry{}
	t.limiter = ratelimit.NewSlidingWindow(time.Minute, 2)

	t.mockAlchemy.On("Name").Return(nft.SourceAlchemy)
	t.mockMoralis.On("Name").Return(nft.SourceMoralis)

	t.subject = &impl{
		providers: []providers.Provider{t.mockAlchemy, t.mockMoralis},
		ledger:    t.mockLedger,
		registry:  t.mockRegistry,
		limiter:   t.limiter,
		pacer:     ratelimit.NewPacer(time.Microsecond),
		metrics:   metrics.New("test"),
	}
}

func (t *testsuite) TestResolveOwnedFirstSuccessWins() {
	var (
		owner     = domain.Address("0xdef1")
		allowlist = []domain.Address{"0xc0ffee"}
	)

	t.mockRegistry.On("Allowlist", mockCtx).Return(allowlist)
	t.mockAlchemy.
		On("FetchOwnedNFTs", mockCtx, owner, allowlist).
		Return([]*nft.Record{
			{TokenId: "1", ContractAddress: "0xc0ffee"},
			{TokenId: "2", ContractAddress: "0xc0ffee"},
		}, nil)

	res, err := t.subject.ResolveOwned(mockCtx, owner)
	t.NoError(err)
	t.Equal(nft.SourceAlchemy, res.Source)
	t.Empty(res.Failed)
	t.Len(res.Records, 2)
	for _, record := range res.Records {
		t.Equal(nft.SourceAlchemy, record.VerificationSource)
		t.Equal(nft.OwnershipContextDirect, record.OwnershipContext)
	}
	t.mockMoralis.AssertNotCalled(t.T(), "FetchOwnedNFTs", mockCtx, owner, allowlist)
}

func (t *testsuite) TestResolveOwnedFallsBackOnError() {
	var (
		owner     = domain.Address("0xdef1")
		allowlist = []domain.Address{"0xc0ffee"}
	)

	t.mockRegistry.On("Allowlist", mockCtx).Return(allowlist)
	t.mockAlchemy.
		On("FetchOwnedNFTs", mockCtx, owner, allowlist).
		Return(nil, providers.WrapErr(nft.SourceAlchemy, 500, errors.New("boom")))
	t.mockMoralis.
		On("FetchOwnedNFTs", mockCtx, owner, allowlist).
		Return([]*nft.Record{{TokenId: "7", ContractAddress: "0xc0ffee"}}, nil)

	res, err := t.subject.ResolveOwned(mockCtx, owner)
	t.NoError(err)
	t.Equal(nft.SourceMoralis, res.Source)
	t.Equal([]nft.Source{nft.SourceAlchemy}, res.Failed)
	t.Equal(nft.SourceMoralis, res.Records[0].VerificationSource)
}

func (t *testsuite) TestResolveOwnedEmptyIsSuccess() {
	var (
		owner     = domain.Address("0xdef1")
		allowlist = []domain.Address{"0xc0ffee"}
	)

	t.mockRegistry.On("Allowlist", mockCtx).Return(allowlist)
	t.mockAlchemy.
		On("FetchOwnedNFTs", mockCtx, owner, allowlist).
		Return([]*nft.Record{}, nil)

	res, err := t.subject.ResolveOwned(mockCtx, owner)
	t.NoError(err)
	t.Equal(nft.SourceAlchemy, res.Source)
	t.Empty(res.Records)
	t.mockMoralis.AssertNotCalled(t.T(), "FetchOwnedNFTs", mockCtx, owner, allowlist)
}

func (t *testsuite) TestResolveOwnedAllFailed() {
	var (
		owner     = domain.Address("0xdef1")
		allowlist = []domain.Address{"0xc0ffee"}
	)

	t.mockRegistry.On("Allowlist", mockCtx).Return(allowlist)
	t.mockAlchemy.
		On("FetchOwnedNFTs", mockCtx, owner, allowlist).
		Return(nil, providers.WrapErr(nft.SourceAlchemy, 429, errors.New("rate limited")))
	t.mockMoralis.
		On("FetchOwnedNFTs", mockCtx, owner, allowlist).
		Return(nil, providers.WrapErr(nft.SourceMoralis, 0, errors.New("timeout")))

	res, err := t.subject.ResolveOwned(mockCtx, owner)
	t.Nil(res)
	t.ErrorIs(err, domain.ErrAllProvidersFailed)
}

func (t *testsuite) TestResolveOwnedSkipsProviderOverBudget() {
	var (
		owner     = domain.Address("0xdef1")
		allowlist = []domain.Address{"0xc0ffee"}
	)

	t.mockRegistry.On("Allowlist", mockCtx).Return(allowlist)
	t.limiter.Record(string(nft.SourceAlchemy))
	t.limiter.Record(string(nft.SourceAlchemy))
	t.mockMoralis.
		On("FetchOwnedNFTs", mockCtx, owner, allowlist).
		Return([]*nft.Record{{TokenId: "3", ContractAddress: "0xc0ffee"}}, nil)

	res, err := t.subject.ResolveOwned(mockCtx, owner)
	t.NoError(err)
	t.Equal(nft.SourceMoralis, res.Source)
	t.Equal([]nft.Source{nft.SourceAlchemy}, res.Failed)
	t.mockAlchemy.AssertNotCalled(t.T(), "FetchOwnedNFTs", mockCtx, owner, allowlist)
}

func (t *testsuite) TestVerifyOnChainConfirmsCurrentHolder() {
	var (
		owner    = domain.Address("0xdef1")
		contract = domain.Address("0xc0ffee")
		records  = []*nft.Record{{TokenId: "42", ContractAddress: contract, TokenType: domain.TokenType721}}
	)

	t.mockLedger.
		On("GetTransferHistory", mockCtx, owner, contract, domain.TokenType721).
		Return([]domain.TransferEvent{
			{ContractAddress: contract, TokenId: "42", BlockNumber: 100, TxHash: "0xaaa", From: "0x0", To: owner},
			{ContractAddress: contract, TokenId: "42", BlockNumber: 200, TxHash: "0xbbb", From: "0x9", To: owner},
			{ContractAddress: contract, TokenId: "99", BlockNumber: 300, TxHash: "0xccc", From: owner, To: "0x9"},
		}, nil)

	t.subject.VerifyOnChain(mockCtx, owner, records)

	v := records[0].ChainVerification
	t.Require().NotNil(v)
	t.True(v.Verified)
	t.True(v.OwnershipConfirmed)
	t.Equal(domain.BlockNumber(200), v.LastTransferBlock)
	t.Equal(domain.TxHash("0xbbb"), v.LastTransferHash)
}

func (t *testsuite) TestVerifyOnChainTransferredAway() {
	var (
		owner    = domain.Address("0xdef1")
		contract = domain.Address("0xc0ffee")
		records  = []*nft.Record{{TokenId: "42", ContractAddress: contract, TokenType: domain.TokenType721}}
	)

	t.mockLedger.
		On("GetTransferHistory", mockCtx, owner, contract, domain.TokenType721).
		Return([]domain.TransferEvent{
			{ContractAddress: contract, TokenId: "42", BlockNumber: 100, TxHash: "0xaaa", From: "0x0", To: owner},
			{ContractAddress: contract, TokenId: "42", BlockNumber: 200, TxHash: "0xbbb", From: owner, To: "0x9"},
		}, nil)

	t.subject.VerifyOnChain(mockCtx, owner, records)

	v := records[0].ChainVerification
	t.Require().NotNil(v)
	t.True(v.Verified)
	t.False(v.OwnershipConfirmed)
}

func (t *testsuite) TestVerifyOnChainEmptyHistoryStaysUnverified() {
	var (
		owner    = domain.Address("0xdef1")
		contract = domain.Address("0xc0ffee")
		records  = []*nft.Record{{TokenId: "42", ContractAddress: contract, TokenType: domain.TokenType721}}
	)

	t.mockLedger.
		On("GetTransferHistory", mockCtx, owner, contract, domain.TokenType721).
		Return([]domain.TransferEvent{}, nil)

	t.subject.VerifyOnChain(mockCtx, owner, records)

	v := records[0].ChainVerification
	t.Require().NotNil(v)
	t.False(v.Verified)
	t.False(v.OwnershipConfirmed)
}

func (t *testsuite) TestVerifyOnChainIgnoresOtherTokensTransfers() {
	var (
		owner    = domain.Address("0xdef1")
		contract = domain.Address("0xc0ffee")
		records  = []*nft.Record{{TokenId: "42", ContractAddress: contract, TokenType: domain.TokenType721}}
	)

	t.mockLedger.
		On("GetTransferHistory", mockCtx, owner, contract, domain.TokenType721).
		Return([]domain.TransferEvent{
			{ContractAddress: contract, TokenId: "99", BlockNumber: 100, TxHash: "0xaaa", From: "0x0", To: owner},
		}, nil)

	t.subject.VerifyOnChain(mockCtx, owner, records)

	v := records[0].ChainVerification
	t.Require().NotNil(v)
	t.False(v.Verified)
	t.False(v.OwnershipConfirmed)
}

func (t *testsuite) TestVerifyOnChainQueries1155History() {
	var (
		owner    = domain.Address("0xdef1")
		contract = domain.Address("0xc0ffee")
		records  = []*nft.Record{{TokenId: "5", ContractAddress: contract, TokenType: domain.TokenType1155}}
	)

	t.mockLedger.
		On("GetTransferHistory", mockCtx, owner, contract, domain.TokenType1155).
		Return([]domain.TransferEvent{
			{ContractAddress: contract, TokenId: "5", BlockNumber: 50, TxHash: "0xaaa", From: "0x0", To: owner},
		}, nil)

	t.subject.VerifyOnChain(mockCtx, owner, records)

	v := records[0].ChainVerification
	t.Require().NotNil(v)
	t.True(v.Verified)
	t.True(v.OwnershipConfirmed)
}

func (t *testsuite) TestVerifyOnChainLedgerFailureIsNonFatal() {
	var (
		owner    = domain.Address("0xdef1")
		contract = domain.Address("0xc0ffee")
		records  = []*nft.Record{
			{TokenId: "1", ContractAddress: contract, TokenType: domain.TokenType721},
			{TokenId: "2", ContractAddress: contract, TokenType: domain.TokenType721},
		}
	)

	t.mockLedger.
		On("GetTransferHistory", mockCtx, owner, contract, domain.TokenType721).
		Return(nil, errors.New("etherscan down"))

	t.subject.VerifyOnChain(mockCtx, owner, records)

	for _, record := range records {
		t.Require().NotNil(record.ChainVerification)
		t.False(record.ChainVerification.Verified)
		t.False(record.ChainVerification.OwnershipConfirmed)
	}
}

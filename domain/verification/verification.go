package verification

import (
	"sort"
	"time"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/delegation"
	"github.com/holdergate/goapi/domain/keys"
	"github.com/holdergate/goapi/domain/nft"
)

// AccessLevel is a totally ordered tier derived from combined direct and
// delegated NFT counts per collection.
type AccessLevel string

const (
	AccessLevelNone      AccessLevel = "none"
	AccessLevelHolder    AccessLevel = "holder"
	AccessLevelCollector AccessLevel = "collector"
	AccessLevelWhale     AccessLevel = "whale"
)

var accessLevelRank = map[AccessLevel]int{
	AccessLevelNone:      0,
	AccessLevelHolder:    1,
	AccessLevelCollector: 2,
	AccessLevelWhale:     3,
}

// Rank returns the level's position in the total order, lowest first.
func (l AccessLevel) Rank() int {
	return accessLevelRank[l]
}

type ChainMetadata struct {
	ChainId   domain.ChainId `json:"chainId"`
	RequestId string         `json:"requestId"`
	// Stale marks a result served from an expired cache entry after total
	// upstream failure.
	Stale bool `json:"stale,omitempty"`
	// LowConfidence marks a result resolved after at least one provider
	// failure, where "zero NFTs" cannot be distinguished from a silent
	// partial outage.
	LowConfidence bool `json:"lowConfidence,omitempty"`
}

// Result is the sole externally consumed artifact of a verification.
type Result struct {
	Collections         []domain.Address    `json:"collections"`
	AccessLevel         AccessLevel         `json:"accessLevel"`
	TotalNFTs           int                 `json:"totalNFTs"`
	NftDetails          []*nft.Record       `json:"nftDetails"`
	VerificationSources []nft.Source        `json:"verificationSources"`
	BlockchainVerified  int                 `json:"blockchainVerified"`
	DirectNFTs          []*nft.Record       `json:"directNFTs"`
	DelegatedNFTs       []*nft.Record       `json:"delegatedNFTs"`
	VerificationTimeMs  int64               `json:"verificationTimeMs"`
	DelegationSummary   *delegation.Summary `json:"delegationSummary,omitempty"`
	ChainMetadata       *ChainMetadata      `json:"chainMetadata,omitempty"`
}

// CacheEntry memoizes an aggregated record set together with the
// provenance of the run that produced it, so an in-TTL hit replays the
// original result unchanged. Entries are stored past ExpiresAt so they
// can be served stale as a last resort.
type CacheEntry struct {
	Data                         []*nft.Record `json:"data"`
	Timestamp                    time.Time     `json:"timestamp"`
	SourcesUsed                  []nft.Source  `json:"sourcesUsed"`
	RequestId                    string        `json:"requestId"`
	VerificationTimeMs           int64         `json:"verificationTimeMs"`
	DelegationContextFingerprint string        `json:"delegationContextFingerprint"`
	ExpiresAt                    time.Time     `json:"expiresAt"`
}

type CacheRepo interface {
	// Get returns the entry for (wallet, fingerprint) if it has not passed
	// ExpiresAt, domain.ErrNotFound otherwise.
	Get(c ctx.Ctx, wallet domain.Address, fingerprint string) (*CacheEntry, error)
	// GetStale returns the wallet's most recent entry regardless of expiry
	// or fingerprint.
	GetStale(c ctx.Ctx, wallet domain.Address) (*CacheEntry, error)
	Set(c ctx.Ctx, wallet domain.Address, entry *CacheEntry) error
}

type Usecase interface {
	Verify(c ctx.Ctx, wallet domain.Address) (*Result, error)
	GetAccessLevel(c ctx.Ctx, wallet domain.Address) (AccessLevel, error)
}

// Fingerprint derives a deterministic delegation-context key from the
// sorted set of (vault, grantType) pairs. A wallet without delegations
// and a wallet whose delegations are unchanged produce the same value.
func Fingerprint(grants []delegation.Grant) string {
	pairs := make([]string, 0, len(grants))
	for _, g := range grants {
		pairs = append(pairs, g.Vault.ToLowerStr()+"/"+string(g.Type))
	}
	sort.Strings(pairs)
	return keys.MD5(keys.CustomKey("|", pairs...))
}

package delegation

import (
	"time"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/nft"
)

// Grant is a registry-recorded authorization from a vault wallet to a
// delegate wallet.
type Grant struct {
	Vault     domain.Address        `json:"vault"`
	Delegate  domain.Address        `json:"delegate"`
	Type      domain.DelegationType `json:"type"`
	Contract  *domain.Address       `json:"contract,omitempty"`
	TokenId   *domain.TokenId       `json:"tokenId,omitempty"`
	Rights    string                `json:"rights,omitempty"`
	ExpiresAt *time.Time            `json:"expiresAt,omitempty"`
}

// Covers reports whether the grant's scope admits the given token.
// Scope narrows from all to contract to token.
func (g *Grant) Covers(contract domain.Address, tokenId domain.TokenId) bool {
	switch g.Type {
	case domain.DelegationTypeAll:
		return true
	case domain.DelegationTypeContract:
		return g.Contract != nil && g.Contract.Equals(contract)
	case domain.DelegationTypeToken:
		return g.Contract != nil && g.Contract.Equals(contract) &&
			g.TokenId != nil && *g.TokenId == tokenId
	default:
		return false
	}
}

// Summary aggregates the delegations that contributed to a verification
// result.
type Summary struct {
	TotalVaults  int                           `json:"totalVaults"`
	TotalGrants  int                           `json:"totalGrants"`
	GrantsByType map[domain.DelegationType]int `json:"grantsByType"`
	Vaults       []domain.Address              `json:"vaults"`
}

// Summarize counts grants per vault and per scope type.
func Summarize(grants []Grant) *Summary {
	s := &Summary{
		GrantsByType: map[domain.DelegationType]int{},
		Vaults:       []domain.Address{},
	}
	seen := map[domain.Address]bool{}
	for _, g := range grants {
		vault := g.Vault.ToLower()
		if !seen[vault] {
			seen[vault] = true
			s.Vaults = append(s.Vaults, vault)
		}
		s.GrantsByType[g.Type]++
	}
	s.TotalVaults = len(s.Vaults)
	s.TotalGrants = len(grants)
	return s
}

type Usecase interface {
	// GetGrants discovers all grants whose delegate is the subject wallet.
	// Discovery results are cached per wallet. A registry failure degrades
	// to an empty grant list, not an error.
	GetGrants(c ctx.Ctx, delegate domain.Address) ([]Grant, error)
	// ResolveDelegatedNFTs narrows each vault's holdings down to the
	// tokens covered by a grant and individually confirmed by the
	// registry.
	ResolveDelegatedNFTs(c ctx.Ctx, delegate domain.Address, grants []Grant) ([]*nft.Record, *Summary, error)
}

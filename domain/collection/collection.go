package collection

import (
	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/verification"
)

// Collection is an ecosystem-recognized NFT collection.
type Collection struct {
	ChainId   domain.ChainId   `json:"chainId"`
	Address   domain.Address   `json:"address"`
	Name      string           `json:"name"`
	TokenType domain.TokenType `json:"tokenType"`
}

// TierRequirement maps an access level to per-collection minimum counts.
// A wallet reaches the level when every minimum is satisfied.
type TierRequirement struct {
	Level    verification.AccessLevel `json:"level"`
	Minimums map[domain.Address]int   `json:"minimums"`
}

type Registry interface {
	// Recognized returns all collections the system grants access for.
	Recognized(c ctx.Ctx) []Collection
	// Allowlist returns the recognized contract addresses, lowercased.
	Allowlist(c ctx.Ctx) []domain.Address
	// FindByAddress returns domain.ErrNotFound for unrecognized contracts.
	FindByAddress(c ctx.Ctx, address domain.Address) (*Collection, error)
	// Tiers returns requirements ordered from highest level to lowest.
	Tiers(c ctx.Ctx) []TierRequirement
}

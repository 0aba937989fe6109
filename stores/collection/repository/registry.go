package repository

import (
	"sort"

	"github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/collection"
)

// RegistryCfg is loaded from the service config at startup. Tiers may
// arrive in any order; the registry sorts them highest level first.
type RegistryCfg struct {
	Collections []collection.Collection
	Tiers       []collection.TierRequirement
}

type registry struct {
	collections []collection.Collection
	byAddress   map[domain.Address]collection.Collection
	allowlist   []domain.Address
	tiers       []collection.TierRequirement
}

func NewRegistry(cfg *RegistryCfg) collection.Registry {
	byAddress := map[domain.Address]collection.Collection{}
	allowlist := make([]domain.Address, 0, len(cfg.Collections))
	for _, col := range cfg.Collections {
		col.Address = col.Address.ToLower()
		byAddress[col.Address] = col
		allowlist = append(allowlist, col.Address)
	}

	tiers := append([]collection.TierRequirement{}, cfg.Tiers...)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].Level.Rank() > tiers[j].Level.Rank()
	})

	return &registry{
		collections: cfg.Collections,
		byAddress:   byAddress,
		allowlist:   allowlist,
		tiers:       tiers,
	}
}

func (r *registry) Recognized(c ctx.Ctx) []collection.Collection {
	return r.collections
}

func (r *registry) Allowlist(c ctx.Ctx) []domain.Address {
	return r.allowlist
}

func (r *registry) FindByAddress(c ctx.Ctx, address domain.Address) (*collection.Collection, error) {
	col, ok := r.byAddress[address.ToLower()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &col, nil
}

func (r *registry) Tiers(c ctx.Ctx) []collection.TierRequirement {
	return r.tiers
}

package nft

import (
	"github.com/holdergate/goapi/domain"
)

// Source is the data provider that supplied an ownership record.
type Source string

const (
	SourceAlchemy   Source = "alchemy"
	SourceMoralis   Source = "moralis"
	SourceEtherscan Source = "etherscan"
	SourceCache     Source = "cache"
)

// OwnershipContext reports whether a record reflects direct wallet
// ownership or access through a delegation grant.
type OwnershipContext string

const (
	OwnershipContextDirect    OwnershipContext = "direct"
	OwnershipContextDelegated OwnershipContext = "delegated"
)

type Attribute struct {
	TraitType string `json:"traitType"`
	Value     string `json:"value"`
}

type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

type Media struct {
	Gateway string `json:"gateway"`
	Raw     string `json:"raw"`
	Format  string `json:"format"`
}

// ChainVerification is attached by the on-chain verifier. A record whose
// verification failed keeps Verified false but stays in the result.
type ChainVerification struct {
	Verified           bool               `json:"verified"`
	LastTransferBlock  domain.BlockNumber `json:"lastTransferBlock"`
	LastTransferHash   domain.TxHash      `json:"lastTransferHash"`
	OwnershipConfirmed bool               `json:"ownershipConfirmed"`
}

// DelegationInfo is present on every delegated record and never on a
// direct one.
type DelegationInfo struct {
	DelegateWallet domain.Address        `json:"delegateWallet"`
	VaultWallet    domain.Address        `json:"vaultWallet"`
	DelegationType domain.DelegationType `json:"delegationType"`
}

// Id is the identity of a record inside a verification result. The same
// token can appear once per ownership context.
type Id struct {
	ContractAddress  domain.Address
	TokenId          domain.TokenId
	OwnershipContext OwnershipContext
}

type Record struct {
	TokenId            domain.TokenId     `json:"tokenId"`
	ContractAddress    domain.Address     `json:"contractAddress"`
	TokenType          domain.TokenType   `json:"tokenType"`
	Metadata           Metadata           `json:"metadata"`
	Media              []Media            `json:"media"`
	VerificationSource Source             `json:"verificationSource"`
	OwnershipContext   OwnershipContext   `json:"ownershipContext"`
	ChainVerification  *ChainVerification `json:"blockchainVerification,omitempty"`
	DelegationInfo     *DelegationInfo    `json:"delegationInfo,omitempty"`
}

func (r *Record) Id() Id {
	return Id{
		ContractAddress:  r.ContractAddress.ToLower(),
		TokenId:          r.TokenId,
		OwnershipContext: r.OwnershipContext,
	}
}

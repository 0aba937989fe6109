package delegateregistry

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/delegation"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// Client talks to the delegation registry. Discovery lists every grant
// naming the wallet as delegate; the check endpoints confirm a single
// grant at token level, with distinct calls per token standard.
type Client interface {
	GetDelegatesForDelegate(c bCtx.Ctx, delegate domain.Address) ([]delegation.Grant, error)
	CheckDelegateForERC721(c bCtx.Ctx, delegate, vault, contract domain.Address, tokenId domain.TokenId) (bool, error)
	CheckDelegateForERC1155(c bCtx.Ctx, delegate, vault, contract domain.Address, tokenId domain.TokenId) (bool, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	Apikey     string
}

type grantResp struct {
	Vault     string `json:"vault"`
	Delegate  string `json:"delegate"`
	Type      string `json:"type"`
	Contract  string `json:"contract"`
	TokenId   string `json:"tokenId"`
	Rights    string `json:"rights"`
	ExpiresAt int64  `json:"expirationTimestamp"`
}

type getDelegatesResp struct {
	Delegations []grantResp `json:"delegations"`
}

type checkReq struct {
	Delegate string `json:"delegate"`
	Vault    string `json:"vault"`
	Contract string `json:"contract"`
	TokenId  string `json:"tokenId,omitempty"`
}

type checkResp struct {
	Valid bool `json:"valid"`
}

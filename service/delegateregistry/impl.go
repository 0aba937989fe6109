package delegateregistry

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/log"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/delegation"
)

const (
	apikeyHeader = "X-API-KEY"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: strings.TrimSuffix(cfg.BaseUrl, "/"),
		apikey:  cfg.Apikey,
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
	apikey  string
}

func (c *client) GetDelegatesForDelegate(ctx bCtx.Ctx, delegate domain.Address) ([]delegation.Grant, error) {
	base, err := url.Parse(c.baseUrl + "/getDelegatesForDelegate")
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("delegate", delegate.ToLowerStr())
	base.RawQuery = params.Encode()
	reqUrl := base.String()

	data, err := c.do(ctx, "GET", reqUrl, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": reqUrl,
			"err": err,
		}).Error("c.do failed")
		return nil, err
	}

	resp := getDelegatesResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}

	grants := make([]delegation.Grant, 0, len(resp.Delegations))
	for _, g := range resp.Delegations {
		grants = append(grants, toGrant(&g, delegate))
	}
	return grants, nil
}

func (c *client) CheckDelegateForERC721(ctx bCtx.Ctx, delegate, vault, contract domain.Address, tokenId domain.TokenId) (bool, error) {
	return c.check(ctx, "/checkDelegateForERC721", delegate, vault, contract, tokenId)
}

func (c *client) CheckDelegateForERC1155(ctx bCtx.Ctx, delegate, vault, contract domain.Address, tokenId domain.TokenId) (bool, error) {
	return c.check(ctx, "/checkDelegateForERC1155", delegate, vault, contract, tokenId)
}

func (c *client) check(ctx bCtx.Ctx, path string, delegate, vault, contract domain.Address, tokenId domain.TokenId) (bool, error) {
	body, err := json.Marshal(checkReq{
		Delegate: delegate.ToLowerStr(),
		Vault:    vault.ToLowerStr(),
		Contract: contract.ToLowerStr(),
		TokenId:  tokenId.String(),
	})
	if err != nil {
		return false, err
	}

	reqUrl := c.baseUrl + path
	data, err := c.do(ctx, "POST", reqUrl, body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": reqUrl,
			"err": err,
		}).Error("c.do failed")
		return false, err
	}

	resp := checkResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return false, err
	}
	return resp.Valid, nil
}

func (c *client) do(ctx bCtx.Ctx, method, reqUrl string, body []byte) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apikeyHeader, c.apikey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.Errorf("status %d: %w", resp.StatusCode, ErrStatusCodeNotOk)
	}
	return ioutil.ReadAll(resp.Body)
}

func toGrant(g *grantResp, delegate domain.Address) delegation.Grant {
	grant := delegation.Grant{
		Vault:    domain.Address(g.Vault).ToLower(),
		Delegate: delegate.ToLower(),
		Type:     parseGrantType(g.Type),
		Rights:   g.Rights,
	}
	if g.Contract != "" {
		grant.Contract = domain.Address(g.Contract).ToLowerPtr()
	}
	if g.TokenId != "" {
		tokenId := domain.TokenId(g.TokenId)
		grant.TokenId = &tokenId
	}
	if g.ExpiresAt > 0 {
		t := time.Unix(g.ExpiresAt, 0)
		grant.ExpiresAt = &t
	}
	return grant
}

func parseGrantType(raw string) domain.DelegationType {
	switch strings.ToUpper(raw) {
	case "ALL":
		return domain.DelegationTypeAll
	case "CONTRACT":
		return domain.DelegationTypeContract
	case "TOKEN":
		return domain.DelegationTypeToken
	default:
		return domain.DelegationType(strings.ToLower(raw))
	}
}

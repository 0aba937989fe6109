package alchemy

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	bCtx "github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/log"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/service/providers"
)

func NewClient(cfg *ClientCfg) providers.Provider {
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

func (c *client) Name() nft.Source {
	return nft.SourceAlchemy
}

func (c *client) FetchOwnedNFTs(ctx bCtx.Ctx, owner domain.Address, allowlist []domain.Address) ([]*nft.Record, error) {
	records := []*nft.Record{}
	pageKey := ""

	for {
		resp, err := c.getNFTs(ctx, owner, allowlist, pageKey)
		if err != nil {
			return nil, err
		}

		for i := range resp.OwnedNfts {
			records = append(records, toRecord(&resp.OwnedNfts[i]))
		}

		if resp.PageKey == "" {
			break
		}
		pageKey = resp.PageKey
	}

	return records, nil
}

func (c *client) getNFTs(ctx bCtx.Ctx, owner domain.Address, allowlist []domain.Address, pageKey string) (*getNFTsResp, error) {
	base, err := url.Parse(fmt.Sprintf("%s/%s/getNFTs", c.baseUrl, c.apikey))
	if err != nil {
		return nil, providers.WrapErr(nft.SourceAlchemy, 0, err)
	}

	params := url.Values{}
	params.Add("owner", owner.ToLowerStr())
	params.Add("withMetadata", "true")
	for _, contract := range allowlist {
		params.Add("contractAddresses[]", contract.ToLowerStr())
	}
	if pageKey != "" {
		params.Add("pageKey", pageKey)
	}
	base.RawQuery = params.Encode()
	reqUrl := base.String()

	data, err := c.get(ctx, reqUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": reqUrl,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}

	resp := &getNFTsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, providers.WrapErr(nft.SourceAlchemy, 0, err)
	}
	return resp, nil
}

func (c *client) get(ctx bCtx.Ctx, reqUrl string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", reqUrl, nil)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceAlchemy, 0, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceAlchemy, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, providers.WrapErr(nft.SourceAlchemy, resp.StatusCode, ErrStatusCodeNotOk)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceAlchemy, 0, err)
	}
	return body, nil
}

func toRecord(n *ownedNft) *nft.Record {
	record := &nft.Record{
		TokenId:            parseTokenId(n.Id.TokenId),
		ContractAddress:    domain.Address(n.Contract.Address).ToLower(),
		TokenType:          parseTokenType(n.Id.TokenMetadata.TokenType),
		VerificationSource: nft.SourceAlchemy,
		Metadata: nft.Metadata{
			Name:        n.Metadata.Name,
			Description: n.Metadata.Description,
			Image:       n.Metadata.Image,
			Attributes:  []nft.Attribute{},
		},
		Media: []nft.Media{},
	}

	if record.Metadata.Name == "" {
		record.Metadata.Name = n.Title
	}
	if record.Metadata.Description == "" {
		record.Metadata.Description = n.Description
	}

	for _, a := range n.Metadata.Attributes {
		record.Metadata.Attributes = append(record.Metadata.Attributes, nft.Attribute{
			TraitType: a.TraitType,
			Value:     attributeValue(a.Value),
		})
	}

	for _, m := range n.Media {
		record.Media = append(record.Media, nft.Media{
			Gateway: m.Gateway,
			Raw:     m.Raw,
			Format:  m.Format,
		})
	}

	return record
}

// parseTokenId converts alchemy's 0x-prefixed hex token ids into decimal
// strings. Unparseable ids are passed through untouched.
func parseTokenId(raw string) domain.TokenId {
	if !strings.HasPrefix(raw, "0x") {
		return domain.TokenId(raw)
	}
	id, ok := new(big.Int).SetString(strings.TrimPrefix(raw, "0x"), 16)
	if !ok {
		return domain.TokenId(raw)
	}
	return domain.TokenId(id.String())
}

func parseTokenType(raw string) domain.TokenType {
	if strings.EqualFold(raw, "ERC1155") {
		return domain.TokenType1155
	}
	return domain.TokenType721
}

func attributeValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

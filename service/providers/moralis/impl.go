package moralis

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
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
	chain := cfg.Chain
	if chain == "" {
		chain = "eth"
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		baseUrl: strings.TrimSuffix(cfg.BaseUrl, "/"),
		apikey:  cfg.Apikey,
		chain:   chain,
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	baseUrl string
	apikey  string
	chain   string
}

func (c *client) Name() nft.Source {
	return nft.SourceMoralis
}

func (c *client) FetchOwnedNFTs(ctx bCtx.Ctx, owner domain.Address, allowlist []domain.Address) ([]*nft.Record, error) {
	records := []*nft.Record{}
	cursor := ""

	for {
		resp, err := c.getNFTs(ctx, owner, allowlist, cursor)
		if err != nil {
			return nil, err
		}

		for i := range resp.Result {
			records = append(records, toRecord(ctx, &resp.Result[i]))
		}

		if resp.Cursor == "" {
			break
		}
		cursor = resp.Cursor
	}

	return records, nil
}

func (c *client) getNFTs(ctx bCtx.Ctx, owner domain.Address, allowlist []domain.Address, cursor string) (*getNFTsResp, error) {
	base, err := url.Parse(fmt.Sprintf("%s/%s/nft", c.baseUrl, owner.ToLowerStr()))
	if err != nil {
		return nil, providers.WrapErr(nft.SourceMoralis, 0, err)
	}

	params := url.Values{}
	params.Add("chain", c.chain)
	params.Add("format", "decimal")
	for _, contract := range allowlist {
		params.Add("token_addresses", contract.ToLowerStr())
	}
	if cursor != "" {
		params.Add("cursor", cursor)
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
		return nil, providers.WrapErr(nft.SourceMoralis, 0, err)
	}
	return resp, nil
}

func (c *client) get(ctx bCtx.Ctx, reqUrl string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", reqUrl, nil)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceMoralis, 0, err)
	}
	req.Header.Set(apikeyHeader, c.apikey)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceMoralis, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, providers.WrapErr(nft.SourceMoralis, resp.StatusCode, ErrStatusCodeNotOk)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceMoralis, 0, err)
	}
	return body, nil
}

func toRecord(ctx bCtx.Ctx, n *resultNft) *nft.Record {
	record := &nft.Record{
		TokenId:            domain.TokenId(n.TokenId),
		ContractAddress:    domain.Address(n.TokenAddress).ToLower(),
		TokenType:          parseContractType(n.ContractType),
		VerificationSource: nft.SourceMoralis,
		Metadata: nft.Metadata{
			Name:       n.Name,
			Attributes: []nft.Attribute{},
		},
		Media: []nft.Media{},
	}

	if n.Metadata == nil || *n.Metadata == "" {
		return record
	}

	meta := nftMetadata{}
	if err := json.Unmarshal([]byte(*n.Metadata), &meta); err != nil {
		// malformed embedded metadata is dropped, not propagated
		ctx.WithFields(log.Fields{
			"contract": n.TokenAddress,
			"tokenId":  n.TokenId,
			"err":      err,
		}).Warn("invalid nft metadata")
		return record
	}

	if meta.Name != "" {
		record.Metadata.Name = meta.Name
	}
	record.Metadata.Description = meta.Description
	record.Metadata.Image = meta.Image
	for _, a := range meta.Attributes {
		record.Metadata.Attributes = append(record.Metadata.Attributes, nft.Attribute{
			TraitType: a.TraitType,
			Value:     attributeValue(a.Value),
		})
	}
	if meta.Image != "" {
		record.Media = append(record.Media, nft.Media{Gateway: meta.Image, Raw: meta.Image})
	}

	return record
}

func parseContractType(raw string) domain.TokenType {
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

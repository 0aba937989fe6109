package etherscan

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"

	"github.com/holdergate/goapi/base/backoff"
	bCtx "github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/base/log"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/service/providers"
)

const (
	actionErc721Txs  = "tokennfttx"
	actionErc1155Txs = "token1155tx"

	noTransactionsFound = "No transactions found"
	maxRetries          = 3
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

func (c *client) Name() nft.Source {
	return nft.SourceEtherscan
}

// FetchOwnedNFTs reconstructs current holdings by replaying the wallet's
// full transfer history, since etherscan has no holdings endpoint.
func (c *client) FetchOwnedNFTs(ctx bCtx.Ctx, owner domain.Address, allowlist []domain.Address) ([]*nft.Record, error) {
	type holding struct {
		balance   int
		tokenType domain.TokenType
		name      string
	}

	holdings := map[nft.Id]*holding{}
	order := []nft.Id{}

	for _, action := range []string{actionErc721Txs, actionErc1155Txs} {
		txs, err := c.getTokenTxs(ctx, action, owner, "")
		if err != nil {
			return nil, err
		}

		tokenType := domain.TokenType721
		if action == actionErc1155Txs {
			tokenType = domain.TokenType1155
		}

		for _, tx := range txs {
			id := nft.Id{
				ContractAddress: domain.Address(tx.ContractAddress).ToLower(),
				TokenId:         domain.TokenId(tx.TokenID),
			}
			h, ok := holdings[id]
			if !ok {
				h = &holding{tokenType: tokenType, name: tx.TokenName}
				holdings[id] = h
				order = append(order, id)
			}

			qty := 1
			if tx.TokenValue != "" {
				if v, err := strconv.Atoi(tx.TokenValue); err == nil {
					qty = v
				}
			}
			if owner.Equals(domain.Address(tx.To)) {
				h.balance += qty
			}
			if owner.Equals(domain.Address(tx.From)) {
				h.balance -= qty
			}
		}
	}

	allowed := map[domain.Address]struct{}{}
	for _, a := range allowlist {
		allowed[a.ToLower()] = struct{}{}
	}

	records := []*nft.Record{}
	for _, id := range order {
		h := holdings[id]
		if h.balance <= 0 {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[id.ContractAddress]; !ok {
				continue
			}
		}
		records = append(records, &nft.Record{
			TokenId:            id.TokenId,
			ContractAddress:    id.ContractAddress,
			TokenType:          h.tokenType,
			VerificationSource: nft.SourceEtherscan,
			Metadata: nft.Metadata{
				Name:       h.name,
				Attributes: []nft.Attribute{},
			},
			Media: []nft.Media{},
		})
	}

	return records, nil
}

func (c *client) GetTransferHistory(ctx bCtx.Ctx, owner domain.Address, contract domain.Address, tokenType domain.TokenType) ([]domain.TransferEvent, error) {
	action := actionErc721Txs
	if tokenType == domain.TokenType1155 {
		action = actionErc1155Txs
	}

	txs, err := c.getTokenTxs(ctx, action, owner, contract.ToLowerStr())
	if err != nil {
		return nil, err
	}

	events := make([]domain.TransferEvent, 0, len(txs))
	for _, tx := range txs {
		blk, _ := strconv.ParseUint(tx.BlockNumber, 10, 64)
		events = append(events, domain.TransferEvent{
			ContractAddress: domain.Address(tx.ContractAddress).ToLower(),
			BlockNumber:     domain.BlockNumber(blk),
			TxHash:          domain.TxHash(tx.Hash),
			From:            domain.Address(tx.From).ToLower(),
			To:              domain.Address(tx.To).ToLower(),
			TokenId:         domain.TokenId(tx.TokenID),
		})
	}
	return events, nil
}

// getTokenTxs queries one transfer-history action, retrying rate-limited
// responses with exponential backoff.
func (c *client) getTokenTxs(ctx bCtx.Ctx, action string, owner domain.Address, contract string) ([]tokenTx, error) {
	bo := backoff.NewExponential(200*time.Millisecond, 2*time.Second)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			if err := bo.Backoff(ctx); err != nil {
				return nil, providers.WrapErr(nft.SourceEtherscan, 0, err)
			}
		}

		txs, retriable, err := c.getTokenTxsOnce(ctx, action, owner, contract)
		if err == nil {
			return txs, nil
		}
		lastErr = err
		if !retriable {
			return nil, err
		}
		ctx.WithFields(log.Fields{
			"action":  action,
			"attempt": attempt,
			"err":     err,
		}).Warn("etherscan rate limited, retrying")
	}
	return nil, lastErr
}

func (c *client) getTokenTxsOnce(ctx bCtx.Ctx, action string, owner domain.Address, contract string) ([]tokenTx, bool, error) {
	base, err := url.Parse(c.baseUrl + "/api")
	if err != nil {
		return nil, false, providers.WrapErr(nft.SourceEtherscan, 0, err)
	}

	params := url.Values{}
	params.Add("module", "account")
	params.Add("action", action)
	params.Add("address", owner.ToLowerStr())
	params.Add("sort", "asc")
	params.Add("apikey", c.apikey)
	if contract != "" {
		params.Add("contractaddress", contract)
	}
	base.RawQuery = params.Encode()
	reqUrl := base.String()

	data, err := c.get(ctx, reqUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": reqUrl,
			"err": err,
		}).Error("c.get failed")
		return nil, false, err
	}

	resp := apiResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, false, providers.WrapErr(nft.SourceEtherscan, 0, err)
	}

	if resp.Status != "1" {
		if resp.Message == noTransactionsFound {
			return []tokenTx{}, false, nil
		}
		// the rate-limit notice arrives inside the result string
		var detail string
		_ = json.Unmarshal(resp.Result, &detail)
		retriable := strings.Contains(strings.ToLower(detail), "rate limit")
		return nil, retriable, providers.WrapErr(nft.SourceEtherscan, http.StatusOK,
			xerrors.Errorf("%s %s: %w", resp.Message, detail, ErrResponseNotOk))
	}

	txs := []tokenTx{}
	if err := json.Unmarshal(resp.Result, &txs); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal result failed")
		return nil, false, providers.WrapErr(nft.SourceEtherscan, 0, err)
	}
	return txs, false, nil
}

func (c *client) get(ctx bCtx.Ctx, reqUrl string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", reqUrl, nil)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceEtherscan, 0, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceEtherscan, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, providers.WrapErr(nft.SourceEtherscan, resp.StatusCode, ErrStatusCodeNotOk)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, providers.WrapErr(nft.SourceEtherscan, 0, err)
	}
	return body, nil
}

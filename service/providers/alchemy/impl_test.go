package alchemy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/holdergate/goapi/base/ctx"
	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/nft"
	"github.com/holdergate/goapi/service/providers"
)

var (
	mockCtx = bCtx.Background()
)

type alchemySuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(alchemySuite))
}

func (s *alchemySuite) newClient(srv *httptest.Server) providers.Provider {
	return NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    5 * time.Second,
		BaseUrl:    srv.URL,
		Apikey:     "test-key",
	})
}

func (s *alchemySuite) TestFetchOwnedNFTsFollowsPagination() {
	pageOne := `{
		"ownedNfts": [{
			"contract": {"address": "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"},
			"id": {"tokenId": "0x1a", "tokenMetadata": {"tokenType": "ERC721"}},
			"title": "Ape #26",
			"metadata": {
				"name": "Ape #26",
				"description": "an ape",
				"image": "ipfs://img",
				"attributes": [{"trait_type": "Fur", "value": "Golden"}, {"trait_type": "Serial", "value": 26}]
			},
			"media": [{"gateway": "https://g/img", "raw": "ipfs://img", "format": "png"}]
		}],
		"pageKey": "page-2",
		"totalCount": 2
	}`
	pageTwo := `{
		"ownedNfts": [{
			"contract": {"address": "0xaaa0000000000000000000000000000000000aaa"},
			"id": {"tokenId": "0x02", "tokenMetadata": {"tokenType": "ERC1155"}}
		}],
		"totalCount": 2
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/test-key/getNFTs", r.URL.Path)
		s.Equal("0xowner", r.URL.Query().Get("owner"))
		s.Equal("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", r.URL.Query()["contractAddresses[]"][0])
		if r.URL.Query().Get("pageKey") == "page-2" {
			fmt.Fprint(w, pageTwo)
		} else {
			fmt.Fprint(w, pageOne)
		}
	}))
	defer srv.Close()

	records, err := s.newClient(srv).FetchOwnedNFTs(mockCtx, "0xOwner", []domain.Address{"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"})
	s.NoError(err)
	s.Len(records, 2)

	s.Equal(domain.TokenId("26"), records[0].TokenId)
	s.Equal(domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"), records[0].ContractAddress)
	s.Equal(domain.TokenType721, records[0].TokenType)
	s.Equal(nft.SourceAlchemy, records[0].VerificationSource)
	s.Equal("Ape #26", records[0].Metadata.Name)
	s.Len(records[0].Metadata.Attributes, 2)
	s.Equal("Golden", records[0].Metadata.Attributes[0].Value)
	s.Equal("26", records[0].Metadata.Attributes[1].Value)
	s.Len(records[0].Media, 1)

	// missing optional fields default to zero values
	s.Equal(domain.TokenId("2"), records[1].TokenId)
	s.Equal(domain.TokenType1155, records[1].TokenType)
	s.Equal("", records[1].Metadata.Name)
	s.Empty(records[1].Metadata.Attributes)
	s.Empty(records[1].Media)
}

func (s *alchemySuite) TestFetchOwnedNFTsEmptySuccess() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ownedNfts": [], "totalCount": 0}`)
	}))
	defer srv.Close()

	records, err := s.newClient(srv).FetchOwnedNFTs(mockCtx, "0xowner", nil)
	s.NoError(err)
	s.Empty(records)
}

func (s *alchemySuite) TestFetchOwnedNFTsStatusNotOk() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := s.newClient(srv).FetchOwnedNFTs(mockCtx, "0xowner", nil)
	s.Error(err)

	pErr, ok := err.(*providers.ProviderError)
	s.True(ok)
	s.Equal(nft.SourceAlchemy, pErr.Provider)
	s.Equal(http.StatusTooManyRequests, pErr.StatusCode)
}

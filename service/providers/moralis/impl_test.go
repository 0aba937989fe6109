package moralis

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

type moralisSuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(moralisSuite))
}

func (s *moralisSuite) newClient(srv *httptest.Server) providers.Provider {
	return NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    5 * time.Second,
		BaseUrl:    srv.URL,
		Apikey:     "test-key",
	})
}

func (s *moralisSuite) TestFetchOwnedNFTsFollowsCursor() {
	pageOne := `{
		"total": 2, "page": 0, "page_size": 1, "cursor": "next",
		"result": [{
			"token_address": "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
			"token_id": "26",
			"contract_type": "ERC721",
			"name": "BoredApeYachtClub",
			"metadata": "{\"name\": \"Ape #26\", \"description\": \"an ape\", \"image\": \"ipfs://img\", \"attributes\": [{\"trait_type\": \"Fur\", \"value\": \"Golden\"}]}"
		}]
	}`
	pageTwo := `{
		"total": 2, "page": 1, "page_size": 1, "cursor": "",
		"result": [{
			"token_address": "0xaaa0000000000000000000000000000000000aaa",
			"token_id": "2",
			"contract_type": "ERC1155",
			"metadata": null
		}]
	}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/0xowner/nft", r.URL.Path)
		s.Equal("test-key", r.Header.Get("X-API-Key"))
		s.Equal("eth", r.URL.Query().Get("chain"))
		if r.URL.Query().Get("cursor") == "next" {
			fmt.Fprint(w, pageTwo)
		} else {
			fmt.Fprint(w, pageOne)
		}
	}))
	defer srv.Close()

	records, err := s.newClient(srv).FetchOwnedNFTs(mockCtx, "0xOwner", nil)
	s.NoError(err)
	s.Len(records, 2)

	s.Equal(domain.TokenId("26"), records[0].TokenId)
	s.Equal(domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"), records[0].ContractAddress)
	s.Equal(domain.TokenType721, records[0].TokenType)
	s.Equal(nft.SourceMoralis, records[0].VerificationSource)
	s.Equal("Ape #26", records[0].Metadata.Name)
	s.Equal("ipfs://img", records[0].Metadata.Image)
	s.Len(records[0].Metadata.Attributes, 1)
	s.Len(records[0].Media, 1)

	// null metadata falls back to top-level fields and empty defaults
	s.Equal(domain.TokenType1155, records[1].TokenType)
	s.Equal("", records[1].Metadata.Name)
	s.Empty(records[1].Metadata.Attributes)
}

func (s *moralisSuite) TestFetchOwnedNFTsMalformedMetadata() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"total": 1, "cursor": "",
			"result": [{
				"token_address": "0xaaa",
				"token_id": "1",
				"contract_type": "ERC721",
				"name": "Thing",
				"metadata": "not json"
			}]
		}`)
	}))
	defer srv.Close()

	records, err := s.newClient(srv).FetchOwnedNFTs(mockCtx, "0xowner", nil)
	s.NoError(err)
	s.Len(records, 1)
	s.Equal("Thing", records[0].Metadata.Name)
	s.Equal("", records[0].Metadata.Image)
}

func (s *moralisSuite) TestFetchOwnedNFTsStatusNotOk() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := s.newClient(srv).FetchOwnedNFTs(mockCtx, "0xowner", nil)
	s.Error(err)

	pErr, ok := err.(*providers.ProviderError)
	s.True(ok)
	s.Equal(nft.SourceMoralis, pErr.Provider)
	s.Equal(http.StatusUnauthorized, pErr.StatusCode)
}

package alchemy

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	Apikey     string
}

type ownedNft struct {
	Contract struct {
		Address string `json:"address"`
	} `json:"contract"`
	Id struct {
		TokenId       string `json:"tokenId"`
		TokenMetadata struct {
			TokenType string `json:"tokenType"`
		} `json:"tokenMetadata"`
	} `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Media       []struct {
		Gateway string `json:"gateway"`
		Raw     string `json:"raw"`
		Format  string `json:"format"`
	} `json:"media"`
	Metadata struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
		Attributes  []struct {
			TraitType string      `json:"trait_type"`
			Value     interface{} `json:"value"`
		} `json:"attributes"`
	} `json:"metadata"`
}

type getNFTsResp struct {
	OwnedNfts  []ownedNft `json:"ownedNfts"`
	PageKey    string     `json:"pageKey"`
	TotalCount int        `json:"totalCount"`
}

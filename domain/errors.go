package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrAllProvidersFailed will throw when every ownership provider failed or
	// was rate limited during direct-ownership resolution
	ErrAllProvidersFailed = errors.New("all ownership providers failed")
	// ErrRegistryDiscovery will throw when the delegation registry discovery
	// call fails; callers degrade to zero delegations
	ErrRegistryDiscovery = errors.New("delegation registry discovery failed")
	// ErrGrantVerification will throw when a single per-token delegation check
	// fails; callers drop the candidate
	ErrGrantVerification = errors.New("delegation grant verification failed")
	// ErrUnsupportedTokenType will throw for token standards other than
	// erc721 and erc1155
	ErrUnsupportedTokenType = errors.New("unsupported token type")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)

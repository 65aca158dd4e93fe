package domain

import "errors"

var (
	// ErrChainNotFound means the requested chain was not found in the registry.
	ErrChainNotFound = errors.New("chain not found")

	// ErrNoTargetNetworks means the configuration lists no active networks.
	ErrNoTargetNetworks = errors.New("no target networks configured")

	// ErrUpstreamSourceFailure means an error occurred while fetching data from the upstream source (e.g., chainid.network).
	ErrUpstreamSourceFailure = errors.New("upstream source failure")
)

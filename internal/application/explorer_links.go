package application

import "network-metadata/internal/domain/entity"

const (
	localExplorerAddressPath = "/blockexplorer/address/"
	fallbackAddressURL       = "https://etherscan.io/address/"
)

// BlockExplorerTxLink gives the block explorer transaction URL.
// Returns "" when the chain is unknown or has no explorer (e.g. a local chain).
func BlockExplorerTxLink(registry *Registry, chainID int64, txnHash string) string {
	chain, ok := registry.ByID(chainID)
	if !ok {
		return ""
	}

	base := chain.DefaultExplorerURL()
	if base == "" {
		return ""
	}

	return base + "/tx/" + txnHash
}

// BlockExplorerAddressLink gives the block explorer URL for a given address.
// The local chain links into the app's own explorer; chains without an
// explorer fall back to Etherscan.
func BlockExplorerAddressLink(network entity.Chain, address string) string {
	if network.ID == entity.LocalChainID {
		return localExplorerAddressPath + address
	}

	base := network.DefaultExplorerURL()
	if base == "" {
		return fallbackAddressURL + address
	}

	return base + "/address/" + address
}

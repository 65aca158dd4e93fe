package port

import "network-metadata/internal/domain/entity"

// NetworkService defines the read-only network metadata queries used by delivery layers.
type NetworkService interface {
	// TargetNetworks returns the configured active networks merged with their attributes, in config order.
	TargetNetworks() []entity.ChainWithAttributes

	// BlockExplorerTxLink returns the explorer URL for a transaction, or "" when none is available.
	BlockExplorerTxLink(chainID int64, txnHash string) string

	// BlockExplorerAddressLink returns the explorer URL for an address. It is never empty.
	BlockExplorerAddressLink(network entity.Chain, address string) string

	// Chain looks up a canonical chain descriptor by id.
	Chain(chainID int64) (entity.Chain, bool)

	// Attributes exposes the raw attribute table.
	Attributes() entity.AttributeTable
}

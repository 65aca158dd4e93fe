package application

import (
	"fmt"

	"network-metadata/internal/application/port"
	"network-metadata/internal/domain"
	"network-metadata/internal/domain/entity"

	"go.uber.org/zap"
)

// Compile-time check
var _ port.NetworkService = (*networkService)(nil)

// networkService answers metadata queries over state fixed at construction.
type networkService struct {
	registry   *Registry
	attributes entity.AttributeTable
	targets    []entity.Chain
}

// NewNetworkService resolves the configured target ids against the registry.
func NewNetworkService(
	registry *Registry,
	attributes entity.AttributeTable,
	targetIDs []int64,
	logger *zap.Logger,
) (port.NetworkService, error) {
	log := logger.Named("NetworkService")

	if len(targetIDs) == 0 {
		return nil, domain.ErrNoTargetNetworks
	}

	targets := make([]entity.Chain, 0, len(targetIDs))
	for _, id := range targetIDs {
		chain, ok := registry.ByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: target network %d is not in the chain registry", domain.ErrChainNotFound, id)
		}
		if _, hasAttrs := attributes.Lookup(id); !hasAttrs {
			log.Warn("Target network has no attribute entry", zap.Int64("chainId", id), zap.String("name", chain.Name))
		}
		targets = append(targets, chain)
	}

	log.Info("Network service initialized",
		zap.Int("targets", len(targets)),
		zap.Int("attributeEntries", attributes.Len()),
		zap.Int("registryChains", registry.Len()),
	)

	return &networkService{
		registry:   registry,
		attributes: attributes,
		targets:    targets,
	}, nil
}

func (s *networkService) TargetNetworks() []entity.ChainWithAttributes {
	out := make([]entity.ChainWithAttributes, len(s.targets))
	for i, chain := range s.targets {
		out[i] = s.attributes.Merge(chain.Clone())
	}
	return out
}

func (s *networkService) BlockExplorerTxLink(chainID int64, txnHash string) string {
	return BlockExplorerTxLink(s.registry, chainID, txnHash)
}

func (s *networkService) BlockExplorerAddressLink(network entity.Chain, address string) string {
	return BlockExplorerAddressLink(network, address)
}

func (s *networkService) Chain(chainID int64) (entity.Chain, bool) {
	return s.registry.ByID(chainID)
}

func (s *networkService) Attributes() entity.AttributeTable {
	return s.attributes
}

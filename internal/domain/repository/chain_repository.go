package repository

import (
	"context"

	"network-metadata/internal/domain/entity"
)

// ChainRepository defines the interface for accessing canonical chain descriptors.
type ChainRepository interface {
	// GetAllChains retrieves the list of all chains from the underlying data source.
	GetAllChains(ctx context.Context) ([]entity.Chain, error)
}

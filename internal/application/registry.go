package application

import (
	"context"
	"fmt"

	"network-metadata/internal/domain"
	"network-metadata/internal/domain/entity"
	domainRepo "network-metadata/internal/domain/repository"

	"go.uber.org/zap"
)

// Registry is an immutable index of canonical chain descriptors keyed by chain id.
type Registry struct {
	byID    map[int64]entity.Chain
	ordered []entity.Chain
}

// NewRegistry indexes the given chain lists in order. When several entries share
// an id, the first one encountered is kept.
func NewRegistry(logger *zap.Logger, sources ...[]entity.Chain) *Registry {
	r := &Registry{byID: make(map[int64]entity.Chain)}
	for _, chains := range sources {
		for _, c := range chains {
			if existing, dup := r.byID[c.ID]; dup {
				logger.Debug("Ignoring duplicate chain id",
					zap.Int64("chainId", c.ID),
					zap.String("kept", existing.Name),
					zap.String("ignored", c.Name))
				continue
			}
			c = c.Clone()
			r.byID[c.ID] = c
			r.ordered = append(r.ordered, c)
		}
	}
	return r
}

// RegistrySource is a chain repository plus whether a failure should abort startup.
type RegistrySource struct {
	Name       string
	Repository domainRepo.ChainRepository
	Required   bool
}

// BuildRegistry loads every source once and indexes the results in source order.
// Failures of optional sources are logged and skipped.
func BuildRegistry(ctx context.Context, logger *zap.Logger, sources ...RegistrySource) (*Registry, error) {
	log := logger.Named("Registry")
	lists := make([][]entity.Chain, 0, len(sources))

	for _, src := range sources {
		chains, err := src.Repository.GetAllChains(ctx)
		if err != nil {
			if src.Required {
				return nil, fmt.Errorf("%w: failed to load chains from %s: %w", domain.ErrUpstreamSourceFailure, src.Name, err)
			}
			log.Warn("Skipping optional chain source", zap.String("source", src.Name), zap.Error(err))
			continue
		}
		log.Info("Loaded chain source", zap.String("source", src.Name), zap.Int("count", len(chains)))
		lists = append(lists, chains)
	}

	reg := NewRegistry(log, lists...)
	log.Info("Chain registry built", zap.Int("chains", reg.Len()))
	return reg, nil
}

// ByID returns a copy of the descriptor registered for chainID.
func (r *Registry) ByID(chainID int64) (entity.Chain, bool) {
	c, ok := r.byID[chainID]
	if !ok {
		return entity.Chain{}, false
	}
	return c.Clone(), true
}

// All returns copies of every descriptor in registration order.
func (r *Registry) All() []entity.Chain {
	out := make([]entity.Chain, len(r.ordered))
	for i, c := range r.ordered {
		out[i] = c.Clone()
	}
	return out
}

// Len returns the number of distinct chain ids.
func (r *Registry) Len() int {
	return len(r.ordered)
}

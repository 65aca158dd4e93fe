package builtin

import (
	"context"
	"fmt"

	"network-metadata/internal/config"
	"network-metadata/internal/domain/entity"
	domainRepo "network-metadata/internal/domain/repository"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.ChainRepository = (*Repository)(nil)

// Repository serves the chain descriptors compiled into the binary,
// followed by the embedded next-version chains and the optional operator file.
type Repository struct {
	extraChainsFile string
	logger          *zap.Logger
}

// NewRepository creates a new built-in chain repository.
func NewRepository(cfg config.RegistryConfig, logger *zap.Logger) domainRepo.ChainRepository {
	return &Repository{
		extraChainsFile: cfg.ExtraChainsFile,
		logger:          logger.Named("BuiltinStorage"),
	}
}

// GetAllChains returns every built-in chain. The result is a fresh slice on each call.
func (r *Repository) GetAllChains(_ context.Context) ([]entity.Chain, error) {
	chains := make([]entity.Chain, 0, len(knownChains)+8)
	for _, c := range knownChains {
		chains = append(chains, c.Clone())
	}

	next, err := parseChains(nextChainsYAML, "embedded next_chains.yaml")
	if err != nil {
		return nil, fmt.Errorf("embedded chain list is invalid: %w", err)
	}
	chains = append(chains, next...)
	r.logger.Debug("Loaded embedded next-version chains", zap.Int("count", len(next)))

	if r.extraChainsFile != "" {
		extra, err := loadChainFile(r.extraChainsFile)
		if err != nil {
			r.logger.Error("Failed to load extra chains file",
				zap.String("path", r.extraChainsFile), zap.Error(err))
			return nil, err
		}
		chains = append(chains, extra...)
		r.logger.Info("Loaded extra chains file",
			zap.String("path", r.extraChainsFile), zap.Int("count", len(extra)))
	}

	return chains, nil
}

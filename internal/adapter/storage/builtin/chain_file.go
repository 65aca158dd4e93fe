package builtin

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"network-metadata/internal/domain/entity"
	"network-metadata/internal/pkg/apperrors"

	"gopkg.in/yaml.v3"
)

//go:embed next_chains.yaml
var nextChainsYAML []byte

// chainFile is the YAML layout of an extra chains file.
type chainFile struct {
	Chains []entity.Chain `yaml:"chains"`
}

// parseChains decodes a chains YAML document and validates every descriptor.
func parseChains(data []byte, source string) ([]entity.Chain, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f chainFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: failed to decode chains from %s: %v", apperrors.ErrInvalidInput, source, err)
	}

	seen := make(map[int64]struct{}, len(f.Chains))
	for i, c := range f.Chains {
		if c.ID <= 0 {
			return nil, fmt.Errorf("%w: chain #%d in %s has invalid id %d", apperrors.ErrInvalidInput, i, source, c.ID)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("%w: chain %d in %s has no name", apperrors.ErrInvalidInput, c.ID, source)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("%w: chain %d listed twice in %s", apperrors.ErrInvalidInput, c.ID, source)
		}
		seen[c.ID] = struct{}{}

		for _, raw := range c.RPCURLs {
			if _, err := entity.NewRPCURL(raw.String()); err != nil {
				return nil, fmt.Errorf("%w: chain %d in %s: %v", apperrors.ErrInvalidInput, c.ID, source, err)
			}
		}
	}

	return f.Chains, nil
}

// loadChainFile reads and parses an operator supplied chains file.
func loadChainFile(path string) ([]entity.Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read chains file %s: %v", apperrors.ErrNotFound, path, err)
	}
	return parseChains(data, path)
}

package chainlist

import (
	"strings"

	dto "network-metadata/internal/adapter/storage/chainlist/dto"
	"network-metadata/internal/domain/entity"

	"go.uber.org/zap"
)

const (
	explorerStandardEIP3091 = "EIP3091"
	statusDeprecated        = "deprecated"
)

// defaultExplorer picks the first EIP-3091 explorer, falling back to the first listed.
func defaultExplorer(raw []dto.ExplorerRaw) *entity.BlockExplorers {
	var picked *dto.ExplorerRaw
	for i := range raw {
		if raw[i].URL == "" {
			continue
		}
		if raw[i].Standard == explorerStandardEIP3091 {
			picked = &raw[i]
			break
		}
		if picked == nil {
			picked = &raw[i]
		}
	}
	if picked == nil {
		return nil
	}
	return &entity.BlockExplorers{Default: &entity.Explorer{
		Name: picked.Name,
		URL:  strings.TrimRight(picked.URL, "/"),
	}}
}

// isTestnet guesses the testnet flag from Chainlist naming, which carries no explicit field.
func isTestnet(raw dto.ChainRaw) bool {
	name := strings.ToLower(raw.Name)
	return strings.Contains(name, "testnet") || strings.Contains(name, "sepolia") ||
		strings.Contains(name, "goerli") || raw.Slip44 == 1 || len(raw.Faucets) > 0
}

// toDomainChains converts raw Chainlist entries into domain chains, dropping deprecated ones.
func toDomainChains(rawChains []dto.ChainRaw, logger *zap.Logger) []entity.Chain {
	if rawChains == nil {
		return nil
	}
	domainChains := make([]entity.Chain, 0, len(rawChains))
	for _, raw := range rawChains {
		if raw.ChainID <= 0 || raw.Status == statusDeprecated {
			continue
		}

		domainRPCs := make([]entity.RPCURL, 0, len(raw.RPC))
		for _, rpcStr := range raw.RPC {
			// Templated URLs need a provider key we do not have.
			if strings.Contains(rpcStr, "${") {
				continue
			}
			rpcURL, err := entity.NewRPCURL(rpcStr)
			if err != nil {
				if logger != nil {
					logger.Debug("Skipping invalid RPC URL during mapping",
						zap.String("rawUrl", rpcStr),
						zap.Int64("chainId", raw.ChainID),
						zap.Error(err))
				}
				continue
			}
			domainRPCs = append(domainRPCs, rpcURL)
		}

		domainChains = append(domainChains, entity.Chain{
			ID:      raw.ChainID,
			Name:    raw.Name,
			Network: raw.ShortName,
			NativeCurrency: entity.Currency{
				Name:     raw.Currency.Name,
				Symbol:   raw.Currency.Symbol,
				Decimals: raw.Currency.Decimals,
			},
			RPCURLs:        domainRPCs,
			BlockExplorers: defaultExplorer(raw.Explorers),
			Testnet:        isTestnet(raw),
		})
	}
	return domainChains
}

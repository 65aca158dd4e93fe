package builtin

import (
	"network-metadata/internal/config"
	"network-metadata/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

// Icon asset handles, resolved by the frontend.
const (
	IconArbitrum = "/arbitrum.svg"
	IconBase     = "/base.svg"
	IconGnosis   = "/gnosis.svg"
	IconHardhat  = "/hardhat.png"
	IconMainnet  = "/mainnet.svg"
	IconOasis    = "/oasis.svg"
	IconOptimism = "/optimism.svg"
	IconPolygon  = "/polygon.svg"
	IconScroll   = "/scroll.svg"
	IconZkSync   = "/zksync.svg"
)

// Oasis chain ids, defined by next_chains.yaml.
const (
	SapphireID        int64 = 23294
	SapphireTestnetID int64 = 23295
	EmeraldID         int64 = 42262
	EmeraldTestnetID  int64 = 42261
)

// maticToken is the MATIC ERC-20 on Ethereum mainnet.
var maticToken = common.HexToAddress("0x7D1AfA7B718fb893dB30A3aBc0Cfc608AaCfeBB0")

// NewAttributeTable builds the presentation metadata table. Keys must already be resolved.
func NewAttributeTable(keys config.ExplorerKeysConfig) entity.AttributeTable {
	oasis := entity.ChainAttributes{Color: entity.SingleColor("#fbebd4"), Icon: IconOasis}

	return entity.NewAttributeTable(map[int64]entity.ChainAttributes{
		SapphireID:        oasis,
		SapphireTestnetID: oasis,
		EmeraldID:         oasis,
		EmeraldTestnetID:  oasis,
		Hardhat.ID: {
			Color: entity.SingleColor("#b8af0c"),
			Icon:  IconHardhat,
		},
		Mainnet.ID: {
			Color:             entity.SingleColor("#ff8b9e"),
			EtherscanEndpoint: "https://api.etherscan.io",
			EtherscanAPIKey:   keys.Mainnet,
			Icon:              IconMainnet,
		},
		Sepolia.ID: {
			Color:             entity.ThemeColors("#5f4bb6", "#87ff65"),
			EtherscanEndpoint: "https://api-sepolia.etherscan.io",
			EtherscanAPIKey:   keys.Mainnet,
			Icon:              IconMainnet,
		},
		Gnosis.ID: {
			Color:             entity.SingleColor("#48a9a6"),
			EtherscanEndpoint: "https://api.gnosisscan.io",
			EtherscanAPIKey:   keys.Mainnet,
			Icon:              IconGnosis,
		},
		Polygon.ID: {
			Color:                      entity.SingleColor("#2bbdf7"),
			NativeCurrencyTokenAddress: &maticToken,
			EtherscanEndpoint:          "https://api.polygonscan.com",
			EtherscanAPIKey:            keys.Polygon,
			Icon:                       IconPolygon,
		},
		PolygonMumbai.ID: {
			Color:                      entity.SingleColor("#92D9FA"),
			NativeCurrencyTokenAddress: &maticToken,
			EtherscanEndpoint:          "https://api-testnet.polygonscan.com",
			EtherscanAPIKey:            keys.Polygon,
			Icon:                       IconPolygon,
		},
		Optimism.ID: {
			Color:             entity.SingleColor("#f01a37"),
			EtherscanEndpoint: "https://api-optimistic.etherscan.io",
			EtherscanAPIKey:   keys.Optimism,
			Icon:              IconOptimism,
		},
		Arbitrum.ID: {
			Color:             entity.SingleColor("#28a0f0"),
			EtherscanEndpoint: "https://api.arbiscan.io",
			EtherscanAPIKey:   keys.Arbitrum,
			Icon:              IconArbitrum,
		},
		ZkSync.ID: {
			Color:             entity.SingleColor("#5f4bb6"),
			EtherscanEndpoint: "https://block-explorer-api.mainnet.zksync.io",
			EtherscanAPIKey:   keys.ZkSync,
			Icon:              IconZkSync,
		},
		ZkSyncTestnet.ID: {
			Color:             entity.SingleColor("#5f4bb6"),
			EtherscanEndpoint: "https://block-explorer-api.testnets.zksync.dev",
			EtherscanAPIKey:   keys.ZkSync,
			Icon:              IconZkSync,
		},
		Base.ID: {
			Color: entity.SingleColor("#1450EE"),
			// TODO: points at the Sepolia API; switch to https://api.basescan.org once mainnet keys are provisioned.
			EtherscanEndpoint: "https://api-sepolia.basescan.org",
			EtherscanAPIKey:   keys.Base,
			Icon:              IconBase,
		},
		BaseSepolia.ID: {
			Color:           entity.SingleColor("#1450EE"),
			EtherscanAPIKey: keys.Base,
			Icon:            IconBase,
		},
		Scroll.ID: {
			Color:             entity.SingleColor("#fbebd4"),
			EtherscanEndpoint: "https://api.scrollscan.com",
			EtherscanAPIKey:   keys.Scroll,
			Icon:              IconScroll,
		},
		ScrollSepolia.ID: {
			Color:             entity.SingleColor("#fbebd4"),
			EtherscanEndpoint: "https://api-sepolia.scrollscan.com",
			EtherscanAPIKey:   keys.Scroll,
			Icon:              IconScroll,
		},
	})
}

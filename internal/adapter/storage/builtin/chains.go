package builtin

import "network-metadata/internal/domain/entity"

func explorer(name, url string) *entity.BlockExplorers {
	return &entity.BlockExplorers{Default: &entity.Explorer{Name: name, URL: url}}
}

var ether = entity.Currency{Name: "Ether", Symbol: "ETH", Decimals: 18}

// Canonical chain descriptors
var ( //nolint:gochecknoglobals // Global for definitions
	Mainnet = entity.Chain{
		ID:             1,
		Name:           "Ethereum",
		Network:        "homestead",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://cloudflare-eth.com"},
		BlockExplorers: explorer("Etherscan", "https://etherscan.io"),
	}
	Sepolia = entity.Chain{
		ID:             11155111,
		Name:           "Sepolia",
		Network:        "sepolia",
		NativeCurrency: entity.Currency{Name: "Sepolia Ether", Symbol: "SEP", Decimals: 18},
		RPCURLs:        []entity.RPCURL{"https://rpc.sepolia.org"},
		BlockExplorers: explorer("Etherscan", "https://sepolia.etherscan.io"),
		Testnet:        true,
	}
	Gnosis = entity.Chain{
		ID:             100,
		Name:           "Gnosis",
		Network:        "gnosis",
		NativeCurrency: entity.Currency{Name: "Gnosis", Symbol: "xDAI", Decimals: 18},
		RPCURLs:        []entity.RPCURL{"https://rpc.gnosischain.com"},
		BlockExplorers: explorer("Gnosisscan", "https://gnosisscan.io"),
	}
	Polygon = entity.Chain{
		ID:             137,
		Name:           "Polygon",
		Network:        "matic",
		NativeCurrency: entity.Currency{Name: "MATIC", Symbol: "MATIC", Decimals: 18},
		RPCURLs:        []entity.RPCURL{"https://polygon-rpc.com"},
		BlockExplorers: explorer("PolygonScan", "https://polygonscan.com"),
	}
	PolygonMumbai = entity.Chain{
		ID:             80001,
		Name:           "Polygon Mumbai",
		Network:        "maticmum",
		NativeCurrency: entity.Currency{Name: "MATIC", Symbol: "MATIC", Decimals: 18},
		RPCURLs:        []entity.RPCURL{"https://rpc-mumbai.maticvigil.com"},
		BlockExplorers: explorer("PolygonScan", "https://mumbai.polygonscan.com"),
		Testnet:        true,
	}
	Optimism = entity.Chain{
		ID:             10,
		Name:           "OP Mainnet",
		Network:        "optimism",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://mainnet.optimism.io"},
		BlockExplorers: explorer("Optimism Explorer", "https://optimistic.etherscan.io"),
	}
	Arbitrum = entity.Chain{
		ID:             42161,
		Name:           "Arbitrum One",
		Network:        "arbitrum",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://arb1.arbitrum.io/rpc"},
		BlockExplorers: explorer("Arbiscan", "https://arbiscan.io"),
	}
	ZkSync = entity.Chain{
		ID:             324,
		Name:           "zkSync Era",
		Network:        "zksync-era",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://mainnet.era.zksync.io", "wss://mainnet.era.zksync.io/ws"},
		BlockExplorers: explorer("zkExplorer", "https://explorer.zksync.io"),
	}
	ZkSyncTestnet = entity.Chain{
		ID:             280,
		Name:           "zkSync Era Testnet",
		Network:        "zksync-era-testnet",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://testnet.era.zksync.dev", "wss://testnet.era.zksync.dev/ws"},
		BlockExplorers: explorer("zkExplorer", "https://goerli.explorer.zksync.io"),
		Testnet:        true,
	}
	Base = entity.Chain{
		ID:             8453,
		Name:           "Base",
		Network:        "base",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://mainnet.base.org"},
		BlockExplorers: explorer("Basescan", "https://basescan.org"),
	}
	BaseSepolia = entity.Chain{
		ID:             84532,
		Name:           "Base Sepolia",
		Network:        "base-sepolia",
		NativeCurrency: entity.Currency{Name: "Sepolia Ether", Symbol: "ETH", Decimals: 18},
		RPCURLs:        []entity.RPCURL{"https://sepolia.base.org"},
		BlockExplorers: explorer("Basescan", "https://sepolia.basescan.org"),
		Testnet:        true,
	}
	Scroll = entity.Chain{
		ID:             534352,
		Name:           "Scroll",
		Network:        "scroll",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://rpc.scroll.io"},
		BlockExplorers: explorer("Scrollscan", "https://scrollscan.com"),
	}
	ScrollSepolia = entity.Chain{
		ID:             534351,
		Name:           "Scroll Sepolia",
		Network:        "scroll-sepolia",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"https://sepolia-rpc.scroll.io"},
		BlockExplorers: explorer("Scrollscan", "https://sepolia.scrollscan.com"),
		Testnet:        true,
	}
	Hardhat = entity.Chain{
		ID:             entity.LocalChainID,
		Name:           "Hardhat",
		Network:        "hardhat",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"http://127.0.0.1:8545"},
	}
	// Foundry shares the hardhat chain id; the registry keeps whichever is listed first.
	Foundry = entity.Chain{
		ID:             entity.LocalChainID,
		Name:           "Foundry",
		Network:        "foundry",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"http://127.0.0.1:8545", "ws://127.0.0.1:8545"},
	}
	Localhost = entity.Chain{
		ID:             1337,
		Name:           "Localhost",
		Network:        "localhost",
		NativeCurrency: ether,
		RPCURLs:        []entity.RPCURL{"http://127.0.0.1:8545"},
	}
)

// knownChains lists the built-in descriptors in registry order.
var knownChains = []entity.Chain{
	Mainnet,
	Sepolia,
	Gnosis,
	Polygon,
	PolygonMumbai,
	Optimism,
	Arbitrum,
	ZkSync,
	ZkSyncTestnet,
	Base,
	BaseSepolia,
	Scroll,
	ScrollSepolia,
	Hardhat,
	Foundry,
	Localhost,
}

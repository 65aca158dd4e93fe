package entity

// LocalChainID is the chain id of the local development network (hardhat/anvil).
const LocalChainID int64 = 31337

// Chain represents a canonical blockchain network descriptor from the chain registry.
type Chain struct {
	ID             int64           `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Network        string          `json:"network,omitempty" yaml:"network,omitempty"`
	NativeCurrency Currency        `json:"nativeCurrency" yaml:"nativeCurrency"`
	RPCURLs        []RPCURL        `json:"rpcUrls" yaml:"rpcUrls"`
	BlockExplorers *BlockExplorers `json:"blockExplorers,omitempty" yaml:"blockExplorers,omitempty"`
	Testnet        bool            `json:"testnet,omitempty" yaml:"testnet,omitempty"`
}

// Currency defines the native currency details of a chain.
type Currency struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals int    `json:"decimals" yaml:"decimals"`
}

// BlockExplorers groups the block explorers known for a chain.
type BlockExplorers struct {
	Default *Explorer `json:"default,omitempty" yaml:"default,omitempty"`
}

// Explorer defines details about a block explorer for a chain.
type Explorer struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Clone returns a deep copy of the descriptor.
func (c Chain) Clone() Chain {
	if c.RPCURLs != nil {
		c.RPCURLs = append([]RPCURL(nil), c.RPCURLs...)
	}
	if c.BlockExplorers != nil {
		explorers := *c.BlockExplorers
		if explorers.Default != nil {
			def := *explorers.Default
			explorers.Default = &def
		}
		c.BlockExplorers = &explorers
	}
	return c
}

// DefaultExplorerURL returns the base URL of the default block explorer, or "" when none is configured.
func (c Chain) DefaultExplorerURL() string {
	if c.BlockExplorers == nil || c.BlockExplorers.Default == nil {
		return ""
	}
	return c.BlockExplorers.Default.URL
}

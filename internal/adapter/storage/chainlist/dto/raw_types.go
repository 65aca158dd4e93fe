package chainlist_dto

// ChainRaw represents the data structure for a blockchain network as received from Chainlist.
type ChainRaw struct {
	Name      string        `json:"name"`
	Chain     string        `json:"chain"`
	RPC       []string      `json:"rpc"`
	Currency  CurrencyRaw   `json:"nativeCurrency"`
	ShortName string        `json:"shortName"`
	ChainID   int64         `json:"chainId"`
	NetworkID int64         `json:"networkId"`
	Explorers []ExplorerRaw `json:"explorers,omitempty"`
	Status    string        `json:"status,omitempty"`
	Slip44    int64         `json:"slip44,omitempty"`
	Faucets   []string      `json:"faucets,omitempty"`
}

// CurrencyRaw defines the native currency details of a chain from raw data.
type CurrencyRaw struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// ExplorerRaw defines details about a block explorer for a chain from raw data.
type ExplorerRaw struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Standard string `json:"standard"`
}

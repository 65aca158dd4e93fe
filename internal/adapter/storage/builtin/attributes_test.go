package builtin

import (
	"testing"

	"network-metadata/internal/config"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttributeTable_Keys(t *testing.T) {
	table := NewAttributeTable(config.ExplorerKeysConfig{
		Mainnet: "main",
		Polygon: "poly",
		Base:    "base",
	})

	mainnet, ok := table.Lookup(Mainnet.ID)
	require.True(t, ok)
	assert.Equal(t, "main", mainnet.EtherscanAPIKey)
	assert.Equal(t, "https://api.etherscan.io", mainnet.EtherscanEndpoint)

	// Sepolia and Gnosis share the mainnet key.
	sepolia, _ := table.Lookup(Sepolia.ID)
	gnosis, _ := table.Lookup(Gnosis.ID)
	assert.Equal(t, "main", sepolia.EtherscanAPIKey)
	assert.Equal(t, "main", gnosis.EtherscanAPIKey)
	assert.True(t, sepolia.Color.IsPair())

	polygon, _ := table.Lookup(Polygon.ID)
	assert.Equal(t, "poly", polygon.EtherscanAPIKey)
	require.NotNil(t, polygon.NativeCurrencyTokenAddress)
	assert.Equal(t, common.HexToAddress("0x7D1AfA7B718fb893dB30A3aBc0Cfc608AaCfeBB0"), *polygon.NativeCurrencyTokenAddress)

	baseSepolia, _ := table.Lookup(BaseSepolia.ID)
	assert.Equal(t, "base", baseSepolia.EtherscanAPIKey)
	assert.Empty(t, baseSepolia.EtherscanEndpoint)

	optimism, _ := table.Lookup(Optimism.ID)
	assert.Empty(t, optimism.EtherscanAPIKey)
}

func TestNewAttributeTable_Entries(t *testing.T) {
	table := NewAttributeTable(config.ExplorerKeysConfig{})
	assert.Equal(t, 19, table.Len())

	hardhat, ok := table.Lookup(Hardhat.ID)
	require.True(t, ok)
	assert.Equal(t, "#b8af0c", hardhat.Color.Light)
	assert.Equal(t, IconHardhat, hardhat.Icon)
	assert.Empty(t, hardhat.EtherscanEndpoint)

	for _, id := range []int64{SapphireID, SapphireTestnetID, EmeraldID, EmeraldTestnetID} {
		attrs, ok := table.Lookup(id)
		require.True(t, ok, "oasis chain %d", id)
		assert.Equal(t, IconOasis, attrs.Icon)
	}

	_, ok = table.Lookup(Localhost.ID)
	assert.False(t, ok)
}

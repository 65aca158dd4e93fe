package application

import (
	"sync"
	"testing"

	"network-metadata/internal/domain"
	"network-metadata/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAttributes() entity.AttributeTable {
	return entity.NewAttributeTable(map[int64]entity.ChainAttributes{
		1: {
			Color:             entity.SingleColor("#ff8b9e"),
			EtherscanEndpoint: "https://api.etherscan.io",
			Icon:              "/mainnet.svg",
		},
		entity.LocalChainID: {
			Color: entity.SingleColor("#b8af0c"),
			Icon:  "/hardhat.png",
		},
	})
}

func TestNetworkService_TargetNetworks(t *testing.T) {
	targets := []int64{entity.LocalChainID, 137, 1}
	svc, err := NewNetworkService(testRegistry(), testAttributes(), targets, zap.NewNop())
	require.NoError(t, err)

	got := svc.TargetNetworks()
	require.Len(t, got, len(targets))
	for i, id := range targets {
		assert.Equal(t, id, got[i].ID)
	}

	require.True(t, got[0].HasAttributes())
	assert.Equal(t, "/hardhat.png", got[0].Icon)
	assert.Equal(t, "Hardhat", got[0].Name)

	// Polygon has no attribute entry but is still returned.
	assert.False(t, got[1].HasAttributes())
	assert.Equal(t, "Polygon", got[1].Name)
	assert.Empty(t, got[1].Icon)
	assert.Equal(t, entity.Color{}, got[1].Color)

	attrs, _ := testAttributes().Lookup(1)
	require.True(t, got[2].HasAttributes())
	assert.Equal(t, attrs.Color, got[2].Color)
	assert.Equal(t, attrs.Icon, got[2].Icon)
	assert.Equal(t, attrs.EtherscanEndpoint, got[2].EtherscanEndpoint)
	assert.Equal(t, "https://etherscan.io", got[2].DefaultExplorerURL())
}

func TestNetworkService_TargetNetworksAreRecomputed(t *testing.T) {
	svc, err := NewNetworkService(testRegistry(), testAttributes(), []int64{1}, zap.NewNop())
	require.NoError(t, err)

	first := svc.TargetNetworks()
	first[0].Icon = "/tampered.svg"
	first[0].Name = "tampered"

	second := svc.TargetNetworks()
	assert.Equal(t, "/mainnet.svg", second[0].Icon)
	assert.Equal(t, "Ethereum", second[0].Name)

	attrs, _ := svc.Attributes().Lookup(1)
	assert.Equal(t, "/mainnet.svg", attrs.Icon)
}

func TestNetworkService_TargetWithoutAttributes(t *testing.T) {
	svc, err := NewNetworkService(testRegistry(), testAttributes(), []int64{137}, zap.NewNop())
	require.NoError(t, err)

	got := svc.TargetNetworks()
	require.Len(t, got, 1)
	assert.NotPanics(t, func() {
		_ = got[0].Icon
		_ = got[0].Color.ForTheme(false)
		_ = got[0].EtherscanEndpoint
	})
	assert.Empty(t, got[0].EtherscanAPIKey)
	assert.Nil(t, got[0].NativeCurrencyTokenAddress)
}

func TestNetworkService_Errors(t *testing.T) {
	_, err := NewNetworkService(testRegistry(), testAttributes(), nil, zap.NewNop())
	assert.ErrorIs(t, err, domain.ErrNoTargetNetworks)

	_, err = NewNetworkService(testRegistry(), testAttributes(), []int64{1, 10}, zap.NewNop())
	assert.ErrorIs(t, err, domain.ErrChainNotFound)
}

func TestNetworkService_Links(t *testing.T) {
	svc, err := NewNetworkService(testRegistry(), testAttributes(), []int64{1}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "https://etherscan.io/tx/0x123", svc.BlockExplorerTxLink(1, "0x123"))
	assert.Empty(t, svc.BlockExplorerTxLink(entity.LocalChainID, "0x123"))

	local, ok := svc.Chain(entity.LocalChainID)
	require.True(t, ok)
	assert.Equal(t, "/blockexplorer/address/0xabc", svc.BlockExplorerAddressLink(local, "0xabc"))
}

func TestNetworkService_ConcurrentReads(t *testing.T) {
	svc, err := NewNetworkService(testRegistry(), testAttributes(), []int64{1, entity.LocalChainID}, zap.NewNop())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = svc.TargetNetworks()
				_ = svc.BlockExplorerTxLink(1, "0x1")
				_, _ = svc.Attributes().Lookup(1)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, svc.TargetNetworks(), 2)
}

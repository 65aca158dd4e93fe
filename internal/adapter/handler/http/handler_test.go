package http

import (
	"encoding/json"
	"testing"

	"network-metadata/internal/application"
	"network-metadata/internal/domain/entity"

	"github.com/fasthttp/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) fasthttp.RequestHandler {
	t.Helper()
	logger := zap.NewNop()

	reg := application.NewRegistry(logger, []entity.Chain{
		{
			ID:             1,
			Name:           "Ethereum",
			BlockExplorers: &entity.BlockExplorers{Default: &entity.Explorer{Name: "Etherscan", URL: "https://etherscan.io"}},
		},
		{ID: entity.LocalChainID, Name: "Hardhat"},
	})
	attrs := entity.NewAttributeTable(map[int64]entity.ChainAttributes{
		1: {Color: entity.ThemeColors("#5f4bb6", "#87ff65"), Icon: "/mainnet.svg"},
	})

	svc, err := application.NewNetworkService(reg, attrs, []int64{entity.LocalChainID, 1}, logger)
	require.NoError(t, err)

	r := router.New()
	RegisterRoutes(r, NewNetworkHandler(svc, logger), logger)
	return LoggingMiddleware(r.Handler, logger)
}

func doGet(handler fasthttp.RequestHandler, uri string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI(uri)
	handler(&ctx)
	return &ctx
}

func decodeLink(t *testing.T, ctx *fasthttp.RequestCtx) string {
	t.Helper()
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp LinkResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return resp.URL
}

func TestGetTxLink(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, "https://etherscan.io/tx/0xABC", decodeLink(t, doGet(h, "/networks/1/tx/0xABC")))
	assert.Empty(t, decodeLink(t, doGet(h, "/networks/31337/tx/0xABC")))
	assert.Empty(t, decodeLink(t, doGet(h, "/networks/8453/tx/0xABC")))
}

func TestGetAddressLink(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, "https://etherscan.io/address/0xDEAD", decodeLink(t, doGet(h, "/networks/1/address/0xDEAD")))
	assert.Equal(t, "/blockexplorer/address/0xDEAD", decodeLink(t, doGet(h, "/networks/31337/address/0xDEAD")))
	assert.Equal(t, "https://etherscan.io/address/0xDEAD", decodeLink(t, doGet(h, "/networks/8453/address/0xDEAD")))
}

func TestInvalidChainID(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, fasthttp.StatusBadRequest, doGet(h, "/networks/mainnet/tx/0x1").Response.StatusCode())
	assert.Equal(t, fasthttp.StatusBadRequest, doGet(h, "/attributes/abc").Response.StatusCode())
}

func TestGetTargetNetworks(t *testing.T) {
	ctx := doGet(newTestRouter(t), "/networks")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var got []map[string]any
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, float64(entity.LocalChainID), got[0]["id"])
	assert.NotContains(t, got[0], "color")

	assert.Equal(t, float64(1), got[1]["id"])
	assert.Equal(t, []any{"#5f4bb6", "#87ff65"}, got[1]["color"])
	assert.Equal(t, "/mainnet.svg", got[1]["icon"])
}

func TestGetAttributes(t *testing.T) {
	h := newTestRouter(t)

	ctx := doGet(h, "/attributes")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var all map[string]entity.ChainAttributes
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &all))
	require.Contains(t, all, "1")
	assert.Equal(t, "/mainnet.svg", all["1"].Icon)

	ctx = doGet(h, "/attributes/1")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var one entity.ChainAttributes
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &one))
	assert.Equal(t, entity.ThemeColors("#5f4bb6", "#87ff65"), one.Color)

	assert.Equal(t, fasthttp.StatusNotFound, doGet(h, "/attributes/31337").Response.StatusCode())
}

func TestHealth(t *testing.T) {
	ctx := doGet(newTestRouter(t), "/health")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "OK", string(ctx.Response.Body()))
}

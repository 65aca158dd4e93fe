package http

import (
	"encoding/json"
	"strconv"

	"network-metadata/internal/application/port"
	"network-metadata/internal/domain/entity"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// LinkResponse carries a derived explorer URL. An empty URL means no link is available.
type LinkResponse struct {
	URL string `json:"url"`
}

type NetworkHandler struct {
	service port.NetworkService
	logger  *zap.Logger
}

func NewNetworkHandler(svc port.NetworkService, logger *zap.Logger) *NetworkHandler {
	return &NetworkHandler{
		service: svc,
		logger:  logger.Named("NetworkHandler"),
	}
}

// GetTargetNetworks handles requests for the active networks with their attributes.
func (h *NetworkHandler) GetTargetNetworks(ctx *fasthttp.RequestCtx) {
	h.writeJSON(ctx, h.service.TargetNetworks())
}

// GetTxLink handles requests for a transaction explorer URL.
func (h *NetworkHandler) GetTxLink(ctx *fasthttp.RequestCtx) {
	chainID, ok := h.chainIDParam(ctx)
	if !ok {
		return
	}
	hash, _ := ctx.UserValue("hash").(string)

	h.writeJSON(ctx, LinkResponse{URL: h.service.BlockExplorerTxLink(chainID, hash)})
}

// GetAddressLink handles requests for an address explorer URL.
func (h *NetworkHandler) GetAddressLink(ctx *fasthttp.RequestCtx) {
	chainID, ok := h.chainIDParam(ctx)
	if !ok {
		return
	}
	address, _ := ctx.UserValue("address").(string)

	network, found := h.service.Chain(chainID)
	if !found {
		h.logger.Debug("Address link requested for unregistered chain", zap.Int64("chainId", chainID))
		network = entity.Chain{ID: chainID}
	}

	h.writeJSON(ctx, LinkResponse{URL: h.service.BlockExplorerAddressLink(network, address)})
}

// GetAttributes handles requests for the whole attribute table.
func (h *NetworkHandler) GetAttributes(ctx *fasthttp.RequestCtx) {
	all := h.service.Attributes().All()
	body := make(map[string]entity.ChainAttributes, len(all))
	for id, attrs := range all {
		body[strconv.FormatInt(id, 10)] = attrs
	}
	h.writeJSON(ctx, body)
}

// GetChainAttributes handles requests for a single chain's attributes.
func (h *NetworkHandler) GetChainAttributes(ctx *fasthttp.RequestCtx) {
	chainID, ok := h.chainIDParam(ctx)
	if !ok {
		return
	}

	attrs, found := h.service.Attributes().Lookup(chainID)
	if !found {
		ctx.Error("Not Found", fasthttp.StatusNotFound)
		return
	}
	h.writeJSON(ctx, attrs)
}

func (h *NetworkHandler) chainIDParam(ctx *fasthttp.RequestCtx) (int64, bool) {
	chainIDStr, ok := ctx.UserValue("chainId").(string)
	if !ok {
		h.logger.Error("Failed to get chainId from context")
		ctx.Error("Bad Request: Invalid chainId format", fasthttp.StatusBadRequest)
		return 0, false
	}

	chainID, err := strconv.ParseInt(chainIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("Failed to parse chainId", zap.String("chainIdStr", chainIDStr), zap.Error(err))
		ctx.Error("Bad Request: Invalid chainId", fasthttp.StatusBadRequest)
		return 0, false
	}
	return chainID, true
}

func (h *NetworkHandler) writeJSON(ctx *fasthttp.RequestCtx, v any) {
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

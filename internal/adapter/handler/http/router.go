package http

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// RegisterRoutes sets up the routes for the network handler and common health checks.
func RegisterRoutes(r *router.Router, h *NetworkHandler, logger *zap.Logger) {
	r.GET("/networks", h.GetTargetNetworks)
	r.GET("/networks/{chainId}/tx/{hash}", h.GetTxLink)
	r.GET("/networks/{chainId}/address/{address}", h.GetAddressLink)
	r.GET("/attributes", h.GetAttributes)
	r.GET("/attributes/{chainId}", h.GetChainAttributes)

	r.GET("/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})

	logger.Info("All routes registered.")
}

// LoggingMiddleware logs every request at debug level.
func LoggingMiddleware(next fasthttp.RequestHandler, logger *zap.Logger) fasthttp.RequestHandler {
	log := logger.Named("HTTP")
	return func(ctx *fasthttp.RequestCtx) {
		next(ctx)
		log.Debug("Request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("uri", ctx.RequestURI()),
			zap.Int("status", ctx.Response.StatusCode()))
	}
}

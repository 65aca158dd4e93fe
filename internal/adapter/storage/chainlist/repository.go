package chainlist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dto "network-metadata/internal/adapter/storage/chainlist/dto"
	"network-metadata/internal/config"
	"network-metadata/internal/domain/entity"
	domainRepo "network-metadata/internal/domain/repository"
	"network-metadata/internal/pkg/apperrors"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.ChainRepository = (*Repository)(nil)

// Repository implements ChainRepository for fetching data from the Chainlist source.
type Repository struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

// NewRepository creates a new Chainlist repository instance. It configures the HTTP client and stores the Chainlist URL.
func NewRepository(cfg config.ChainlistConfig, logger *zap.Logger) domainRepo.ChainRepository {
	return &Repository{
		client:  &fasthttp.Client{},
		url:     cfg.URL,
		timeout: cfg.GetTimeout(),
		logger:  logger.Named("ChainlistStorage"),
	}
}

// GetAllChains fetches the full list of chains from the configured Chainlist URL.
func (r *Repository) GetAllChains(ctx context.Context) ([]entity.Chain, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: chainlist request not started: %w", apperrors.ErrExternalServiceFailure, err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	req.SetRequestURI(r.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")

	timeout := r.timeout
	if deadline, hasDeadline := ctx.Deadline(); hasDeadline {
		requestTimeout := time.Until(deadline)
		if requestTimeout > 0 && requestTimeout < timeout {
			timeout = requestTimeout
		}
	}

	r.logger.Debug(
		"Fetching chains from Chainlist",
		zap.String("url", r.url),
		zap.Duration("timeout", timeout),
	)

	done := make(chan error, 1)
	go func() { done <- r.client.DoTimeout(req, resp, timeout) }()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		// req and resp stay in use until DoTimeout returns.
		go func() {
			<-done
			fasthttp.ReleaseRequest(req)
			fasthttp.ReleaseResponse(resp)
		}()
		r.logger.Warn("Chainlist request aborted", zap.Error(ctx.Err()))
		return nil, fmt.Errorf("%w: chainlist request aborted: %w", apperrors.ErrExternalServiceFailure, ctx.Err())
	}
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	if err != nil {
		r.logger.Error("Failed to execute request to Chainlist", zap.Error(err))
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("%w: chainlist request timed out after %v", apperrors.ErrTimeout, timeout)
		}
		return nil, fmt.Errorf("%w: failed to execute request to Chainlist: %v",
			apperrors.ErrExternalServiceFailure, err,
		)
	}

	if resp.StatusCode() == fasthttp.StatusNotFound {
		r.logger.Warn("Chainlist source reported not found", zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("%w: chainlist source reported not found (%s)", apperrors.ErrNotFound, r.url)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		r.logger.Error(
			"Chainlist returned non-OK status",
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
		)
		return nil, fmt.Errorf("%w: chainlist returned status %d",
			apperrors.ErrExternalServiceFailure, resp.StatusCode(),
		)
	}

	var body []byte
	contentEncoding := resp.Header.Peek(fasthttp.HeaderContentEncoding)
	if bytes.EqualFold(contentEncoding, []byte("gzip")) {
		body, err = resp.BodyGunzip()
		if err != nil {
			r.logger.Error("Failed to gunzip Chainlist response body", zap.Error(err))
			return nil, fmt.Errorf("%w: failed to decompress chainlist response: %v",
				apperrors.ErrExternalServiceFailure, err,
			)
		}
	} else {
		body = resp.Body()
	}

	var rawChains []dto.ChainRaw
	if err := json.Unmarshal(body, &rawChains); err != nil {
		r.logger.Error("Failed to unmarshal Chainlist response into raw DTOs",
			zap.Error(err), zap.ByteString("bodySample", body[:min(1024, len(body))]),
		)
		return nil, fmt.Errorf("%w: failed to parse chainlist response into raw DTOs: %v",
			apperrors.ErrExternalServiceFailure, err,
		)
	}

	domainChains := toDomainChains(rawChains, r.logger)
	r.logger.Info("Fetched chains from Chainlist",
		zap.Int("rawCount", len(rawChains)),
		zap.Int("mappedCount", len(domainChains)),
	)

	return domainChains, nil
}

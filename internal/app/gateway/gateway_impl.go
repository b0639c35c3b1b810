package gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"medcare-client/internal/app/config"
	"medcare-client/internal/app/contracts"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type remoteGateway struct {
	BaseURL string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

func NewRemoteGateway(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.Gateway {
	var limiter *rate.Limiter
	if rps := internalConfig.Gateway.RequestsPerSecond; rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return &remoteGateway{
		BaseURL: strings.TrimRight(internalConfig.Gateway.BaseURL, "/"),
		Client: &http.Client{
			Timeout: time.Duration(internalConfig.Gateway.TimeoutSeconds) * time.Second,
		},
		Limiter: limiter,
		Log:     logger,
	}
}

func (g *remoteGateway) Call(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	return g.do(ctx, method, path, body, out, "")
}

func (g *remoteGateway) CallIdempotent(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	return g.do(ctx, method, path, body, out, uuid.NewString())
}

func (g *remoteGateway) Ping(ctx context.Context) error {
	return g.do(ctx, constvars.MethodGet, constvars.EndpointHealth, nil, nil, "")
}

func (g *remoteGateway) do(ctx context.Context, method, path string, body interface{}, out interface{}, idempotencyKey string) error {
	if g.Limiter != nil {
		if err := g.Limiter.Wait(ctx); err != nil {
			return exceptions.ErrRateLimiterWait(err)
		}
	}

	var requestBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+path, requestBody)
	if err != nil {
		return exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if idempotencyKey != "" {
		req.Header.Set(constvars.HeaderIdempotencyKey, idempotencyKey)
	}

	g.Log.Debug("gateway call",
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingPathKey, path),
	)

	resp, err := g.Client.Do(req)
	if err != nil {
		g.Log.Error("gateway call failed",
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingPathKey, path),
			zap.Error(err),
		)
		return exceptions.ErrGatewayUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusBadRequest {
		message := rejectionMessage(resp.Body)
		g.Log.Warn("gateway call rejected",
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingPathKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorMessageKey, message),
		)
		return exceptions.ErrRemoteRejected(resp.StatusCode, message)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeResponse(err)
	}
	return nil
}

// rejectionMessage extracts the conventional error-detail field from
// an error payload, falling back to a generic description.
func rejectionMessage(body io.Reader) string {
	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return constvars.ErrClientRequestRejected
	}
	var remoteError responses.RemoteError
	if err := json.Unmarshal(bodyBytes, &remoteError); err == nil && remoteError.Detail != "" {
		return remoteError.Detail
	}
	return constvars.ErrClientRequestRejected
}

package restaurant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
	"fooddelivery/internal/gateway/rest"
	retrierconfig "fooddelivery/pkg/retrier"
	"fooddelivery/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "restaurant-backend"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	maxErrorBody = 512
)

// Gateway is the HTTP client for the restaurant service. The customer side
// pushes order status changes to it so the restaurant dashboard stays in
// step with delivery progress.
type Gateway struct {
	baseURL string
	client  doer
	retrier retrier
}

func New(baseURL string, client doer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     rest.IsRetryable,
	}

	return &Gateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) SyncOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	req := dto.OrderStatusChangedEvent{
		OrderID: orderID,
		Status:  status.String(),
	}
	url := g.baseURL + "/api/orders/receive-status-update"

	err := g.executeWithMetrics(ctx, "SyncOrderStatus", func(ctx context.Context) error {
		payload, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return &rest.StatusError{Code: resp.StatusCode, Body: string(raw)}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("gateway restaurant, sync order status: %s: %w", orderID, err)
	}

	return nil
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := rest.StatusLabel(err)
	rest.GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		rest.GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

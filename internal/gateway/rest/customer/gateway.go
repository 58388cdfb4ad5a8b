package customer

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
	serviceName = "customer-backend"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	maxErrorBody = 512
)

// Gateway is the HTTP client for the customer service. The delivery side
// uses it to mirror delivery progress into the source order and to poll for
// ready orders it may have missed.
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

func (g *Gateway) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error {
	req := dto.OrderStatusUpdateRequest{
		Status: status.String(),
	}

	var resp dto.OrderStatusUpdateResponse
	url := fmt.Sprintf("%s/api/orders/%s/update-status", g.baseURL, orderID)

	err := g.executeWithMetrics(ctx, "UpdateOrderStatus", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPut, url, req, &resp)
	})
	if err != nil {
		return fmt.Errorf("gateway customer, update order status: %s: %w", orderID, err)
	}

	return nil
}

func (g *Gateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp dto.OrderResponse
	url := fmt.Sprintf("%s/api/orders/%s", g.baseURL, orderID)

	err := g.executeWithMetrics(ctx, "GetOrderByID", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, url, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway customer, get order: %s: %w", orderID, err)
	}

	return toDomain(&resp.Data), nil
}

// ListReadyOrders backs the reconciliation poller: every order currently in
// Ready status, whether or not its callback got through.
func (g *Gateway) ListReadyOrders(ctx context.Context) ([]entities.Order, error) {
	var resp dto.OrderListResponse
	url := g.baseURL + "/api/orders/internal/ready"

	err := g.executeWithMetrics(ctx, "ListReadyOrders", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, url, nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway customer, list ready orders: %w", err)
	}

	return toDomainList(resp.Data), nil
}

func (g *Gateway) doJSON(ctx context.Context, method, url string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", rest.ErrNotFound, url)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &rest.StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
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

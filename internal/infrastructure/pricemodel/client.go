// Package pricemodel - HTTP-клиент внешней модели цены недвижимости.
package pricemodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/smartproperty-service/internal/config"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/observability"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// ErrInvalidPrediction - модель вернула неположительную или нечисловую цену
var ErrInvalidPrediction = errors.New("price model returned invalid prediction")

type predictResponse struct {
	PredictedPrice *float64 `json:"predicted_price"`
}

type client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[float64]
	url        string
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewClient создает клиента модели. Возвращает nil, если URL модели не задан.
func NewClient(cfg *config.PriceModelConfig, metrics *observability.Metrics, logger *zap.Logger) repository.PriceModelRepository {
	if cfg.URL == "" {
		return nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:        "price-model",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &client{
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		url:        cfg.URL + "/predict",
		metrics:    metrics,
		logger:     logger,
	}
}

// Predict отправляет вектор признаков модели и возвращает цену
func (c *client) Predict(ctx context.Context, features domain.PriceFeatures) (float64, error) {
	start := time.Now()
	defer func() {
		c.metrics.PriceModelDuration.Observe(time.Since(start).Seconds())
	}()

	return c.breaker.Execute(func() (float64, error) {
		return c.predict(ctx, features)
	})
}

func (c *client) predict(ctx context.Context, features domain.PriceFeatures) (float64, error) {
	payload, err := json.Marshal(features)
	if err != nil {
		return 0, fmt.Errorf("marshal features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("price model error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	if out.PredictedPrice == nil || math.IsNaN(*out.PredictedPrice) || math.IsInf(*out.PredictedPrice, 0) || *out.PredictedPrice <= 0 {
		return 0, ErrInvalidPrediction
	}

	c.logger.Debug("Price model prediction", zap.Float64("predicted_price", *out.PredictedPrice))
	return *out.PredictedPrice, nil
}

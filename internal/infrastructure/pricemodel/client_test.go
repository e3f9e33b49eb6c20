package pricemodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/smartproperty-service/internal/config"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/observability"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, url string) *client {
	t.Helper()
	repo := NewClient(&config.PriceModelConfig{URL: url, Timeout: time.Second}, observability.NewMetricsForTesting(), zap.NewNop())
	require.NotNil(t, repo)
	return repo.(*client)
}

func TestNewClient_DisabledWithoutURL(t *testing.T) {
	assert.Nil(t, NewClient(&config.PriceModelConfig{}, observability.NewMetricsForTesting(), zap.NewNop()))
}

func TestClient_Predict(t *testing.T) {
	t.Run("sends feature vector", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/predict", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var got domain.PriceFeatures
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, "Rumah", got.PropertyType)
			assert.Equal(t, 3, got.Bedrooms)
			assert.Equal(t, 72, got.OverallScore)

			_, _ = w.Write([]byte(`{"predicted_price": 1850000000}`))
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		price, err := c.Predict(context.Background(), domain.PriceFeatures{PropertyType: "Rumah", Bedrooms: 3, OverallScore: 72})
		require.NoError(t, err)
		assert.Equal(t, 1850000000.0, price)
	})

	t.Run("invalid prediction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"predicted_price": -1}`))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Predict(context.Background(), domain.PriceFeatures{})
		assert.ErrorIs(t, err, ErrInvalidPrediction)
	})

	t.Run("missing field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Predict(context.Background(), domain.PriceFeatures{})
		assert.ErrorIs(t, err, ErrInvalidPrediction)
	})

	t.Run("upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).Predict(context.Background(), domain.PriceFeatures{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestClient_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	for i := 0; i < 5; i++ {
		_, err := c.Predict(context.Background(), domain.PriceFeatures{})
		require.Error(t, err)
	}

	_, err := c.Predict(context.Background(), domain.PriceFeatures{})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(5), calls.Load())
}

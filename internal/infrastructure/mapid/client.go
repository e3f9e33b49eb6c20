package mapid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartproperty-service/internal/config"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultStyle     = "basic"
	requestTimeout   = 15 * time.Second
	maxResourceBytes = 20 << 20
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewMapIDClient создает прокси-клиент подложки MAPID. Ключ API остается на сервере.
func NewMapIDClient(cfg *config.MapIDConfig, logger *zap.Logger) repository.BasemapRepository {
	return &client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

// GetStyle возвращает JSON стиля карты
func (c *client) GetStyle(ctx context.Context, style string) (*domain.BasemapResource, error) {
	if style == "" {
		style = defaultStyle
	}
	if strings.ContainsAny(style, "/\\?#") || strings.Contains(style, "..") {
		return nil, errors.ErrInvalidRequest.WithMessage("Invalid map style")
	}

	return c.fetch(ctx, fmt.Sprintf("styles/%s/style.json", url.PathEscape(style)), nil, "application/json")
}

// GetResource возвращает спрайты, шрифты и тайлы стиля
func (c *client) GetResource(ctx context.Context, path string, query string) (*domain.BasemapResource, error) {
	path = strings.TrimLeft(path, "/")
	if path == "" || strings.Contains(path, "..") {
		return nil, errors.ErrInvalidRequest.WithMessage("Invalid resource path")
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		params = url.Values{}
	}

	return c.fetch(ctx, escapePath(path), params, "application/octet-stream")
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func (c *client) fetch(ctx context.Context, path string, params url.Values, defaultContentType string) (*domain.BasemapResource, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)

	target := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	c.logger.Debug("Calling MAPID basemap", zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrUpstreamError
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return nil, errors.ErrUpstreamError
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceBytes))
	if err != nil {
		c.logger.Error("Failed to read response", zap.String("path", path), zap.Error(err))
		return nil, errors.ErrUpstreamError
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("MAPID returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode))
		appErr := errors.ErrUpstreamError.
			WithMessage(fmt.Sprintf("Failed to load map resource: %d", resp.StatusCode)).
			WithDetails(map[string]interface{}{"upstream_status": resp.StatusCode})
		appErr.StatusCode = resp.StatusCode
		return nil, appErr
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return &domain.BasemapResource{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

package repository

import (
	"context"

	"github.com/smartproperty-service/internal/domain"
)

// BasemapRepository определяет доступ к провайдеру подложки карты
type BasemapRepository interface {
	// GetStyle возвращает JSON стиля карты
	GetStyle(ctx context.Context, style string) (*domain.BasemapResource, error)

	// GetResource возвращает ресурс стиля (тайлы, шрифты, спрайты) по относительному пути
	GetResource(ctx context.Context, path string, query string) (*domain.BasemapResource, error)
}

package repository

import (
	"context"

	"github.com/smartproperty-service/internal/domain"
)

// ZoneCatalogRepository определяет доступ к слоям климатических зон
type ZoneCatalogRepository interface {
	// Load возвращает слой индикатора; false если данных нет
	Load(ctx context.Context, indicator domain.Indicator) (*domain.ZoneCollection, bool)
}

package repository

import (
	"context"
	"time"

	"github.com/smartproperty-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetClimateScores получает оценки точки; nil, nil при промахе
	GetClimateScores(ctx context.Context, coord domain.Coordinate) (*domain.ClimateAssessment, error)

	// SetClimateScores сохраняет оценки точки
	SetClimateScores(ctx context.Context, assessment *domain.ClimateAssessment, ttl time.Duration) error
}

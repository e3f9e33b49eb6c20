package repository

import (
	"context"

	"github.com/smartproperty-service/internal/domain"
)

// PriceModelRepository - внешняя обученная модель цены
type PriceModelRepository interface {
	// Predict возвращает предсказанную цену по вектору признаков
	Predict(ctx context.Context, features domain.PriceFeatures) (float64, error)
}

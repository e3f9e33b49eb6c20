package repository

import (
	"context"

	"github.com/smartproperty-service/internal/domain"
)

// PropertyRepository определяет методы для работы с объектами недвижимости
type PropertyRepository interface {
	// List возвращает объекты, подходящие под фильтр, в порядке id
	List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)

	// GetByID возвращает объект по id; ErrPropertyNotFound если его нет
	GetByID(ctx context.Context, id int64) (*domain.Property, error)

	// GetByIDs возвращает найденные объекты в порядке id, отсутствующие пропускаются
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Property, error)
}

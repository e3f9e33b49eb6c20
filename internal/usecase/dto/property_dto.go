package dto

import "github.com/smartproperty-service/internal/domain"

// PropertyListRequest - фильтры списка объектов
type PropertyListRequest struct {
	MinPrice  int64 `query:"min_price" validate:"min=0"`
	MaxPrice  int64 `query:"max_price" validate:"min=0"`
	MinScore  int   `query:"min_score" validate:"min=0,max=100"`
	Bedrooms  int   `query:"bedrooms" validate:"min=0"`
	Bathrooms int   `query:"bathrooms" validate:"min=0"`
}

// RecommendRequest - параметры рекомендаций.
// Priority: overall или фактор риска; неизвестное значение сохраняет порядок по id.
type RecommendRequest struct {
	MinPrice int64  `query:"min_price" validate:"min=0"`
	MaxPrice int64  `query:"max_price" validate:"min=0"`
	Bedrooms int    `query:"bedrooms" validate:"min=0"`
	Priority string `query:"priority"`
}

// PropertyListResponse - список объектов
type PropertyListResponse struct {
	Count      int                `json:"count"`
	Properties []*domain.Property `json:"properties"`
}

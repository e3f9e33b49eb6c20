package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/pkg/errors"
	"github.com/smartproperty-service/internal/pkg/validator"
	"github.com/smartproperty-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// RecommendLimit - число объектов в рекомендациях
	RecommendLimit = 3
	// PriorityOverall - сортировка по общей климатической оценке
	PriorityOverall = "overall"
)

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	logger       *zap.Logger
}

func NewPropertyUseCase(propertyRepo repository.PropertyRepository, logger *zap.Logger) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// List возвращает объекты по фильтру
func (uc *PropertyUseCase) List(ctx context.Context, req dto.PropertyListRequest) (*dto.PropertyListResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	properties, err := uc.propertyRepo.List(ctx, domain.PropertyFilter{
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
		MinScore:     req.MinScore,
		MinBedrooms:  req.Bedrooms,
		MinBathrooms: req.Bathrooms,
	})
	if err != nil {
		uc.logger.Error("Failed to list properties", zap.Error(err))
		return nil, err
	}

	return &dto.PropertyListResponse{Count: len(properties), Properties: properties}, nil
}

// Get возвращает объект по id
func (uc *PropertyUseCase) Get(ctx context.Context, id int64) (*domain.Property, error) {
	return uc.propertyRepo.GetByID(ctx, id)
}

// Compare возвращает объекты по списку id через запятую
func (uc *PropertyUseCase) Compare(ctx context.Context, idsParam string) (*dto.PropertyListResponse, error) {
	ids, err := ParsePropertyIDs(idsParam)
	if err != nil {
		return nil, err
	}

	properties, err := uc.propertyRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("Failed to get properties for comparison", zap.Error(err))
		return nil, err
	}
	if len(properties) == 0 {
		return nil, errors.ErrPropertyNotFound.WithMessage("No properties found with the provided IDs")
	}

	return &dto.PropertyListResponse{Count: len(properties), Properties: properties}, nil
}

// ParsePropertyIDs разбирает "1,2,3". Пустые элементы игнорируются.
func ParsePropertyIDs(param string) ([]int64, error) {
	parts := strings.Split(param, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.ErrInvalidRequest.
				WithMessage("Invalid property ID format").
				WithDetails(map[string]interface{}{"id": part})
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("No property IDs provided")
	}
	return ids, nil
}

// Recommend возвращает лучшие объекты по приоритету
func (uc *PropertyUseCase) Recommend(ctx context.Context, req dto.RecommendRequest) (*dto.PropertyListResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if req.Priority == "" {
		req.Priority = PriorityOverall
	}

	properties, err := uc.propertyRepo.List(ctx, domain.PropertyFilter{
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		MinBedrooms: req.Bedrooms,
	})
	if err != nil {
		uc.logger.Error("Failed to list properties for recommendation", zap.Error(err))
		return nil, err
	}

	RankProperties(properties, req.Priority)
	if len(properties) > RecommendLimit {
		properties = properties[:RecommendLimit]
	}

	return &dto.PropertyListResponse{Count: len(properties), Properties: properties}, nil
}

// RankProperties сортирует объекты по убыванию приоритета, устойчиво.
// Неизвестный приоритет оставляет порядок без изменений.
func RankProperties(properties []*domain.Property, priority string) {
	switch {
	case priority == PriorityOverall:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].ClimateRiskScore > properties[j].ClimateRiskScore
		})
	case domain.IsRiskFactor(priority):
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Risk(priority).Rank() > properties[j].Risk(priority).Rank()
		})
	}
}

package usecase

import (
	"context"
	"sort"

	"github.com/jonboulle/clockwork"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"go.uber.org/zap"
)

// ClimateSafeThreshold - общая оценка, начиная с которой объект считается безопасным
const ClimateSafeThreshold = 70

// AnalyticsUseCase - агрегаты по объектам для аналитической панели
type AnalyticsUseCase struct {
	propertyRepo repository.PropertyRepository
	climate      ClimateScorer
	clock        clockwork.Clock
	logger       *zap.Logger
}

func NewAnalyticsUseCase(
	propertyRepo repository.PropertyRepository,
	climate ClimateScorer,
	clock clockwork.Clock,
	logger *zap.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		propertyRepo: propertyRepo,
		climate:      climate,
		clock:        clock,
		logger:       logger,
	}
}

// PriceByDistrict - средняя цена по районам, по убыванию
func (uc *AnalyticsUseCase) PriceByDistrict(ctx context.Context) ([]domain.DistrictPrice, error) {
	properties, err := uc.propertyRepo.List(ctx, domain.PropertyFilter{})
	if err != nil {
		uc.logger.Error("Failed to list properties for price analytics", zap.Error(err))
		return nil, err
	}

	type acc struct {
		sum   float64
		count int
	}
	byDistrict := make(map[string]*acc)
	order := make([]string, 0)
	for _, p := range properties {
		a, ok := byDistrict[p.District]
		if !ok {
			a = &acc{}
			byDistrict[p.District] = a
			order = append(order, p.District)
		}
		a.sum += float64(p.Price)
		a.count++
	}

	result := make([]domain.DistrictPrice, 0, len(order))
	for _, d := range order {
		a := byDistrict[d]
		result = append(result, domain.DistrictPrice{
			District:      d,
			AveragePrice:  a.sum / float64(a.count),
			PropertyCount: a.count,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AveragePrice > result[j].AveragePrice
	})
	return result, nil
}

// ClimateByDistrict - средние климатические оценки по районам, по убыванию общей оценки
func (uc *AnalyticsUseCase) ClimateByDistrict(ctx context.Context) ([]domain.DistrictClimate, error) {
	properties, err := uc.propertyRepo.List(ctx, domain.PropertyFilter{})
	if err != nil {
		uc.logger.Error("Failed to list properties for climate analytics", zap.Error(err))
		return nil, err
	}

	byDistrict := make(map[string]*domain.DistrictClimate)
	order := make([]string, 0)
	for _, p := range properties {
		s := uc.scoresOf(ctx, p)
		dc, ok := byDistrict[p.District]
		if !ok {
			dc = &domain.DistrictClimate{District: p.District}
			byDistrict[p.District] = dc
			order = append(order, p.District)
		}
		dc.PropertyCount++
		dc.LSTScore += float64(s.LST)
		dc.NDVIScore += float64(s.NDVI)
		dc.UTFVIScore += float64(s.UTFVI)
		dc.UHIScore += float64(s.UHI)
		dc.OverallScore += float64(s.Overall)
	}

	result := make([]domain.DistrictClimate, 0, len(order))
	for _, d := range order {
		dc := *byDistrict[d]
		n := float64(dc.PropertyCount)
		dc.LSTScore /= n
		dc.NDVIScore /= n
		dc.UTFVIScore /= n
		dc.UHIScore /= n
		dc.OverallScore /= n
		result = append(result, dc)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].OverallScore > result[j].OverallScore
	})
	return result, nil
}

// DashboardSummary - общая сводка по всем объектам
func (uc *AnalyticsUseCase) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	properties, err := uc.propertyRepo.List(ctx, domain.PropertyFilter{})
	if err != nil {
		uc.logger.Error("Failed to list properties for dashboard", zap.Error(err))
		return nil, err
	}

	summary := &domain.DashboardSummary{
		TotalProperties: len(properties),
		LastUpdated:     uc.clock.Now().UTC(),
	}
	if len(properties) == 0 {
		return summary, nil
	}

	var priceSum float64
	var safe int
	var avg domain.AverageScores
	for _, p := range properties {
		s := uc.scoresOf(ctx, p)
		priceSum += float64(p.Price)
		if s.Overall >= ClimateSafeThreshold {
			safe++
		}
		avg.LST += float64(s.LST)
		avg.NDVI += float64(s.NDVI)
		avg.UTFVI += float64(s.UTFVI)
		avg.UHI += float64(s.UHI)
		avg.Overall += float64(s.Overall)
	}

	n := float64(len(properties))
	avg.LST /= n
	avg.NDVI /= n
	avg.UTFVI /= n
	avg.UHI /= n
	avg.Overall /= n

	summary.AveragePrice = priceSum / n
	summary.ClimateSafePercentage = float64(safe) / n * 100
	summary.AvgClimateScores = avg
	return summary, nil
}

// scoresOf - оценки объекта; отсутствующие считаются конвейером по координатам
func (uc *AnalyticsUseCase) scoresOf(ctx context.Context, p *domain.Property) domain.ClimateScores {
	if p.ClimateScores != nil {
		return *p.ClimateScores
	}
	return uc.climate.GetClimateScores(ctx, p.Location)
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// SeedProperties возвращает демонстрационные объекты (Джакарта).
// Каждый вызов возвращает независимые копии.
func SeedProperties() []*domain.Property {
	return []*domain.Property{
		{
			ID: 1, Title: "Modern House in Central Jakarta", City: "Jakarta", District: "Menteng",
			PropertyType: "Rumah", Certificate: "SHM - Sertifikat Hak Milik",
			Location: domain.Coordinate{Lat: -6.21, Lng: 106.82},
			Price:    2500000000, Bedrooms: 3, Bathrooms: 2, LandArea: 150, BuildingArea: 120,
			LandPricePerMeter: 12000000, ClimateRiskScore: 75,
			Risks: map[string]domain.RiskLevel{
				domain.RiskFactorFlood: "low", domain.RiskFactorTemperature: "medium",
				domain.RiskFactorAirQuality: "good", domain.RiskFactorLandslide: "very_low",
			},
		},
		{
			ID: 2, Title: "Spacious Family Home in Kemang", City: "Jakarta", District: "Mampang Prapatan",
			PropertyType: "Rumah Baru", Certificate: "SHM - Sertifikat Hak Milik",
			Location: domain.Coordinate{Lat: -6.26, Lng: 106.81},
			Price:    4800000000, Bedrooms: 4, Bathrooms: 3, LandArea: 300, BuildingArea: 250,
			LandPricePerMeter: 14000000, ClimateRiskScore: 85,
			Risks: map[string]domain.RiskLevel{
				domain.RiskFactorFlood: "very_low", domain.RiskFactorTemperature: "low",
				domain.RiskFactorAirQuality: "very_good", domain.RiskFactorLandslide: "very_low",
			},
		},
		{
			ID: 3, Title: "Cozy Apartment in West Jakarta", City: "Jakarta", District: "Kebon Jeruk",
			PropertyType: "Apartemen", Certificate: "Strata Title",
			Location: domain.Coordinate{Lat: -6.17, Lng: 106.77},
			Price:    1200000000, Bedrooms: 2, Bathrooms: 1, LandArea: 0, BuildingArea: 65,
			LandPricePerMeter: 0, ClimateRiskScore: 60,
			Risks: map[string]domain.RiskLevel{
				domain.RiskFactorFlood: "medium", domain.RiskFactorTemperature: "high",
				domain.RiskFactorAirQuality: "moderate", domain.RiskFactorLandslide: "very_low",
			},
		},
		{
			ID: 4, Title: "Luxury Villa in South Jakarta", City: "Jakarta", District: "Cilandak",
			PropertyType: "Villa Mewah", Certificate: "SHM - Sertifikat Hak Milik",
			Location: domain.Coordinate{Lat: -6.28, Lng: 106.80},
			Price:    8500000000, Bedrooms: 5, Bathrooms: 4, LandArea: 500, BuildingArea: 400,
			LandPricePerMeter: 15000000, ClimateRiskScore: 90,
			Risks: map[string]domain.RiskLevel{
				domain.RiskFactorFlood: "very_low", domain.RiskFactorTemperature: "low",
				domain.RiskFactorAirQuality: "excellent", domain.RiskFactorLandslide: "very_low",
			},
		},
		{
			ID: 5, Title: "Strategic Property in East Jakarta", City: "Jakarta", District: "Jatinegara",
			PropertyType: "Rumah", Certificate: "HGB - Hak Guna Bangunan",
			Location: domain.Coordinate{Lat: -6.22, Lng: 106.90},
			Price:    1800000000, Bedrooms: 3, Bathrooms: 2, LandArea: 120, BuildingArea: 100,
			LandPricePerMeter: 10000000, ClimateRiskScore: 55,
			Risks: map[string]domain.RiskLevel{
				domain.RiskFactorFlood: "high", domain.RiskFactorTemperature: "medium",
				domain.RiskFactorAirQuality: "moderate", domain.RiskFactorLandslide: "low",
			},
		},
	}
}

// propertyRepository - хранилище объектов в памяти, используется без БД
type propertyRepository struct {
	mu         sync.RWMutex
	properties map[int64]*domain.Property
	logger     *zap.Logger
}

func NewPropertyRepository(properties []*domain.Property, logger *zap.Logger) repository.PropertyRepository {
	byID := make(map[int64]*domain.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	return &propertyRepository{properties: byID, logger: logger}
}

func (r *propertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		if filter.Matches(p) {
			result = append(result, clone(p))
		}
	}
	sortByID(result)

	r.logger.Debug("Properties listed", zap.Int("count", len(result)))
	return result, nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[id]
	if !ok {
		return nil, errors.ErrPropertyNotFound
	}
	return clone(p), nil
}

func (r *propertyRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool, len(ids))
	result := make([]*domain.Property, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := r.properties[id]; ok {
			result = append(result, clone(p))
		}
	}
	sortByID(result)
	return result, nil
}

func sortByID(ps []*domain.Property) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
}

func clone(p *domain.Property) *domain.Property {
	cp := *p
	if p.Risks != nil {
		cp.Risks = make(map[string]domain.RiskLevel, len(p.Risks))
		for k, v := range p.Risks {
			cp.Risks[k] = v
		}
	}
	if p.ClimateScores != nil {
		scores := *p.ClimateScores
		cp.ClimateScores = &scores
	}
	return &cp
}

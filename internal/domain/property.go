package domain

// RiskLevel - качественный уровень риска объекта
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// Rank переводит уровень риска в число для сортировки: чем меньше риск, тем больше
func (r RiskLevel) Rank() int {
	switch r {
	case RiskVeryLow:
		return 5
	case RiskLow:
		return 4
	case RiskMedium:
		return 3
	case RiskHigh:
		return 2
	case RiskVeryHigh:
		return 1
	}
	return 3
}

// Факторы риска, по которым возможны рекомендации
const (
	RiskFactorFlood       = "flood"
	RiskFactorTemperature = "temperature"
	RiskFactorAirQuality  = "air_quality"
	RiskFactorLandslide   = "landslide"
)

// IsRiskFactor проверяет имя фактора риска
func IsRiskFactor(name string) bool {
	switch name {
	case RiskFactorFlood, RiskFactorTemperature, RiskFactorAirQuality, RiskFactorLandslide:
		return true
	}
	return false
}

// Property - объект недвижимости
type Property struct {
	ID                int64                `json:"id" db:"id"`
	Title             string               `json:"title" db:"title"`
	City              string               `json:"city" db:"city"`
	District          string               `json:"district" db:"district"`
	PropertyType      string               `json:"property_type" db:"property_type"`
	Certificate       string               `json:"certificate" db:"certificate"`
	Location          Coordinate           `json:"location"`
	Price             int64                `json:"price" db:"price"`
	Bedrooms          int                  `json:"bedrooms" db:"bedrooms"`
	Bathrooms         int                  `json:"bathrooms" db:"bathrooms"`
	LandArea          float64              `json:"land_area" db:"land_area"`
	BuildingArea      float64              `json:"building_area" db:"building_area"`
	LandPricePerMeter float64              `json:"land_price_per_meter" db:"land_price_per_meter"`
	ClimateRiskScore  int                  `json:"climate_risk_score" db:"climate_risk_score"`
	Risks             map[string]RiskLevel `json:"risks"`
	ClimateScores     *ClimateScores       `json:"climate_scores,omitempty"`
}

// Risk возвращает уровень риска по фактору; отсутствующий считается medium
func (p *Property) Risk(factor string) RiskLevel {
	if lvl, ok := p.Risks[factor]; ok {
		return lvl
	}
	return RiskMedium
}

// PropertyFilter - фильтр списка объектов
type PropertyFilter struct {
	MinPrice     int64
	MaxPrice     int64
	MinScore     int
	MinBedrooms  int
	MinBathrooms int
}

// Matches проверяет объект на соответствие фильтру. MaxPrice = 0 означает без ограничения.
func (f PropertyFilter) Matches(p *Property) bool {
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return p.ClimateRiskScore >= f.MinScore &&
		p.Bedrooms >= f.MinBedrooms &&
		p.Bathrooms >= f.MinBathrooms
}

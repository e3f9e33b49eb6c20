package domain

import "time"

// DistrictPrice - средняя цена по району
type DistrictPrice struct {
	District      string  `json:"district"`
	AveragePrice  float64 `json:"average_price"`
	PropertyCount int     `json:"property_count"`
}

// DistrictClimate - средние климатические оценки по району
type DistrictClimate struct {
	District      string  `json:"district"`
	PropertyCount int     `json:"property_count"`
	LSTScore      float64 `json:"lst_score"`
	NDVIScore     float64 `json:"ndvi_score"`
	UTFVIScore    float64 `json:"utfvi_score"`
	UHIScore      float64 `json:"uhi_score"`
	OverallScore  float64 `json:"overall_score"`
}

// AverageScores - средние оценки по всем объектам
type AverageScores struct {
	LST     float64 `json:"lst"`
	NDVI    float64 `json:"ndvi"`
	UTFVI   float64 `json:"utfvi"`
	UHI     float64 `json:"uhi"`
	Overall float64 `json:"overall"`
}

// DashboardSummary - сводка для аналитической панели
type DashboardSummary struct {
	TotalProperties       int           `json:"total_properties"`
	AveragePrice          float64       `json:"average_price"`
	ClimateSafePercentage float64       `json:"climate_safe_percentage"`
	AvgClimateScores      AverageScores `json:"avg_climate_scores"`
	LastUpdated           time.Time     `json:"last_updated"`
}

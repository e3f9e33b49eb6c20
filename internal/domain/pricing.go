package domain

// PriceSource - кто посчитал цену
type PriceSource string

const (
	PriceSourceModel     PriceSource = "model"
	PriceSourceHeuristic PriceSource = "heuristic"
)

// PriceFeatures - вектор признаков для внешней модели цены
type PriceFeatures struct {
	PropertyType      string  `json:"property_type"`
	Bedrooms          int     `json:"bedrooms"`
	Certificate       string  `json:"certificate"`
	LandPricePerMeter float64 `json:"land_price_per_meter"`
	LandArea          float64 `json:"land_area"`
	City              string  `json:"city"`
	District          string  `json:"district"`
	LSTScore          int     `json:"lst_score"`
	NDVIScore         int     `json:"ndvi_score"`
	UTFVIScore        int     `json:"utfvi_score"`
	UHIScore          int     `json:"uhi_score"`
	OverallScore      int     `json:"overall_score"`
}

// PriceFactors - вклад каждого множителя эвристики
type PriceFactors struct {
	BasePrice          float64 `json:"basePrice"`
	CertificateImpact  float64 `json:"certificateImpact"`
	PropertyTypeImpact float64 `json:"propertyTypeImpact"`
	BedroomsImpact     float64 `json:"bedroomsImpact"`
	ClimateImpact      float64 `json:"climateImpact"`
}

// PriceEstimate - результат оценки цены
type PriceEstimate struct {
	PredictedPrice float64       `json:"predicted_price"`
	Confidence     float64       `json:"confidence"`
	Source         PriceSource   `json:"source"`
	Factors        *PriceFactors `json:"factors,omitempty"`
	ClimateScores  ClimateScores `json:"climate_scores"`
}

package dto

// LocationInput - координаты объекта в запросе цены
type LocationInput struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude_range"`
	Longitude *float64 `json:"longitude" validate:"required,longitude_range"`
}

// ClimateScoresInput - оценки, переданные клиентом; отсутствующие поля считаются нейтральными
type ClimateScoresInput struct {
	LST     *int `json:"lst_score" validate:"omitempty,min=0,max=100"`
	NDVI    *int `json:"ndvi_score" validate:"omitempty,min=0,max=100"`
	UTFVI   *int `json:"utfvi_score" validate:"omitempty,min=0,max=100"`
	UHI     *int `json:"uhi_score" validate:"omitempty,min=0,max=100"`
	Overall *int `json:"overall_score" validate:"omitempty,min=0,max=100"`
}

// IsEmpty - ни одна оценка не передана
func (in ClimateScoresInput) IsEmpty() bool {
	return in.LST == nil && in.NDVI == nil && in.UTFVI == nil && in.UHI == nil && in.Overall == nil
}

// PredictPriceRequest - запрос оценки цены
type PredictPriceRequest struct {
	Location          *LocationInput      `json:"location" validate:"required"`
	Bedrooms          *int                `json:"bedrooms" validate:"required,min=0,max=100"`
	LandArea          *float64            `json:"landArea" validate:"required,gte=0"`
	Certificate       string              `json:"certificate" validate:"required"`
	PropertyType      string              `json:"propertyType" validate:"required"`
	LandPricePerMeter *float64            `json:"landPricePerMeter" validate:"required,gte=0"`
	City              string              `json:"city,omitempty"`
	District          string              `json:"district,omitempty"`
	ClimateScores     *ClimateScoresInput `json:"climateScores,omitempty"`
}

package dto

import (
	geo "github.com/paulmach/orb/geojson"
	"github.com/smartproperty-service/internal/domain"
)

// MaxBatchPoints - максимум точек в пакетном запросе оценок
const MaxBatchPoints = 100

// ClimateScoresResponse - оценки точки. Пять чисел лежат на верхнем уровне.
type ClimateScoresResponse struct {
	domain.ClimateScores
	Location           domain.Coordinate  `json:"location"`
	Source             domain.ScoreSource `json:"source"`
	ResolvedIndicators []domain.Indicator `json:"resolved_indicators"`
}

// NewClimateScoresResponse собирает ответ из результата конвейера
func NewClimateScoresResponse(a domain.ClimateAssessment) ClimateScoresResponse {
	resolved := a.Resolved
	if resolved == nil {
		resolved = []domain.Indicator{}
	}
	return ClimateScoresResponse{
		ClimateScores:      a.Scores,
		Location:           a.Coordinate,
		Source:             a.Source,
		ResolvedIndicators: resolved,
	}
}

// BatchClimateScoresRequest - пакетный запрос оценок
type BatchClimateScoresRequest struct {
	Points []domain.Coordinate `json:"points" validate:"required,min=1,max=100,dive"`
}

// BatchClimateScoresResponse - оценки в порядке точек запроса
type BatchClimateScoresResponse struct {
	Results []ClimateScoresResponse `json:"results"`
}

// LayerPageRequest - параметры страницы слоя
type LayerPageRequest struct {
	Page    int `query:"page" validate:"min=1"`
	PerPage int `query:"per_page" validate:"min=1,max=1000"`
}

// LayerPageResponse - страница features слоя
type LayerPageResponse struct {
	Page          int            `json:"page"`
	PerPage       int            `json:"per_page"`
	TotalFeatures int            `json:"total_features"`
	TotalPages    int            `json:"total_pages"`
	Type          string         `json:"type"`
	Features      []*geo.Feature `json:"features"`
}

package domain

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Indicator - климатический индикатор, по которому строится слой зон
type Indicator string

const (
	IndicatorLST   Indicator = "lst"   // land surface temperature
	IndicatorNDVI  Indicator = "ndvi"  // vegetation index
	IndicatorUTFVI Indicator = "utfvi" // urban thermal field variance index
	IndicatorUHI   Indicator = "uhi"   // urban heat island
)

// Indicators - фиксированный порядок обхода индикаторов
var Indicators = []Indicator{IndicatorLST, IndicatorNDVI, IndicatorUTFVI, IndicatorUHI}

// ParseIndicator разбирает имя индикатора без учета регистра
func ParseIndicator(s string) (Indicator, error) {
	ind := Indicator(strings.ToLower(strings.TrimSpace(s)))
	if ind.IsValid() {
		return ind, nil
	}
	return "", fmt.Errorf("unknown indicator %q", s)
}

func (i Indicator) IsValid() bool {
	switch i {
	case IndicatorLST, IndicatorNDVI, IndicatorUTFVI, IndicatorUHI:
		return true
	}
	return false
}

// HigherCodeIsBetter - для NDVI больший код означает больше растительности
func (i Indicator) HigherCodeIsBetter() bool {
	return i == IndicatorNDVI
}

func (i Indicator) String() string {
	return string(i)
}

// Coordinate - точка в десятичных градусах
type Coordinate struct {
	Lat float64 `json:"lat" validate:"latitude_range"`
	Lng float64 `json:"lng" validate:"longitude_range"`
}

// Point возвращает точку orb (x = долгота, y = широта)
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// ZoneRecord - полигон зоны с кодом классификации (1..5)
type ZoneRecord struct {
	Geometry orb.Geometry
	Code     int
	HasCode  bool
}

// ZoneCollection - загруженный слой зон одного индикатора.
// После загрузки не изменяется.
type ZoneCollection struct {
	Indicator Indicator
	Source    string
	Zones     []ZoneRecord
	Features  *geojson.FeatureCollection
}

// Len возвращает число зон, nil-safe
func (z *ZoneCollection) Len() int {
	if z == nil {
		return 0
	}
	return len(z.Zones)
}

// ClimateScores - четыре нормализованных оценки и общая, 0..100
type ClimateScores struct {
	LST     int `json:"lst_score"`
	NDVI    int `json:"ndvi_score"`
	UTFVI   int `json:"utfvi_score"`
	UHI     int `json:"uhi_score"`
	Overall int `json:"overall_score"`
}

// Get возвращает оценку индикатора
func (s ClimateScores) Get(ind Indicator) int {
	switch ind {
	case IndicatorLST:
		return s.LST
	case IndicatorNDVI:
		return s.NDVI
	case IndicatorUTFVI:
		return s.UTFVI
	case IndicatorUHI:
		return s.UHI
	}
	return 0
}

// Set записывает оценку индикатора
func (s *ClimateScores) Set(ind Indicator, v int) {
	switch ind {
	case IndicatorLST:
		s.LST = v
	case IndicatorNDVI:
		s.NDVI = v
	case IndicatorUTFVI:
		s.UTFVI = v
	case IndicatorUHI:
		s.UHI = v
	}
}

// ScoreSource - откуда получены оценки
type ScoreSource string

const (
	ScoreSourceZones     ScoreSource = "zones"
	ScoreSourcePartial   ScoreSource = "partial"
	ScoreSourceSynthetic ScoreSource = "synthetic"
)

// ClimateAssessment - результат конвейера вместе с происхождением оценок
type ClimateAssessment struct {
	Coordinate Coordinate    `json:"coordinate"`
	Scores     ClimateScores `json:"scores"`
	Source     ScoreSource   `json:"source"`
	Resolved   []Indicator   `json:"resolved_indicators"`
}

// RiskLayer - описание слоя климатического риска для легенды карты
type RiskLayer struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Legend      []LegendEntry `json:"legend"`
}

type LegendEntry struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

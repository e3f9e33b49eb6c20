package utils

import "math"

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// RoundHalfEven округляет к ближайшему целому, половины к четному
func RoundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}

// ClampInt ограничивает значение отрезком [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat ограничивает значение отрезком [lo, hi]
func ClampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

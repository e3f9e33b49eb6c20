package climate

import "github.com/smartproperty-service/internal/domain"

// MaxClassificationCode - число уровней классификации зон (коды 1..5).
// Должно совпадать со схемой, по которой растровые слои переведены в полигоны;
// во время работы это не проверяется.
const MaxClassificationCode = 5

// Normalize переводит код зоны в оценку 0..100, где больше всегда лучше.
// Для NDVI направление обратное: больший код означает больше зелени.
// Код вне 1..MaxClassificationCode считается отсутствующим.
func Normalize(code int, ok bool, indicator domain.Indicator) (float64, bool) {
	if !ok || code < 1 || code > MaxClassificationCode {
		return 0, false
	}

	var score float64
	if indicator.HigherCodeIsBetter() {
		score = float64(code) / MaxClassificationCode * 100
	} else {
		score = float64(MaxClassificationCode-code+1) / MaxClassificationCode * 100
	}
	return score, true
}

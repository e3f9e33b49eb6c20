package climate

import (
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/pkg/utils"
)

// Центр локальной сетки (Бандунг)
const (
	gridOriginLat = -6.9
	gridOriginLng = 107.6
	gridMaxIndex  = 4
)

// GridResolver - приближение без геометрии. Слой зон игнорируется,
// код всегда определен и зависит только от координаты.
type GridResolver struct{}

func (GridResolver) Name() string { return EngineGrid }

func (GridResolver) Resolve(_ *domain.ZoneCollection, coord domain.Coordinate) (int, bool) {
	return GridCode(coord), true
}

// GridCode вычисляет код ячейки сетки 5x5 вокруг центра региона
func GridCode(coord domain.Coordinate) int {
	latN := (coord.Lat - gridOriginLat) * 10
	lngN := (coord.Lng - gridOriginLng) * 10

	// int() усекает к нулю
	gx := utils.ClampInt(int(lngN*2)+2, 0, gridMaxIndex)
	gy := utils.ClampInt(int(latN*2)+2, 0, gridMaxIndex)

	return (gx+gy)%MaxClassificationCode + 1
}

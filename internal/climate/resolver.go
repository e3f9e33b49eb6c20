// Package climate содержит ядро расчета климатических оценок:
// поиск зоны по точке, сеточную аппроксимацию, нормализацию кодов
// и детерминированную генерацию оценок при отсутствии данных.
package climate

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/smartproperty-service/internal/domain"
)

// Движки геометрии
const (
	EnginePlanar = "planar"
	EngineGrid   = "grid"
)

// Resolver определяет код классификации зоны для точки
type Resolver interface {
	// Resolve возвращает код зоны; false если код определить нельзя
	Resolve(zones *domain.ZoneCollection, coord domain.Coordinate) (int, bool)

	// Name возвращает имя реализации для логов
	Name() string
}

// NewResolver выбирает реализацию один раз при создании.
// Полигональный резолвер используется, если движок не задан как grid
// и проверка геометрических операций прошла успешно.
func NewResolver(engine string) Resolver {
	if engine == EngineGrid || !probeGeometry() {
		return GridResolver{}
	}
	return PolygonResolver{}
}

// probeGeometry проверяет, что операции содержания и расстояния работают
func probeGeometry() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	square := orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	if !planar.PolygonContains(square, orb.Point{0.5, 0.5}) {
		return false
	}
	if planar.PolygonContains(square, orb.Point{2, 2}) {
		return false
	}
	return math.Abs(planar.DistanceFromSegment(orb.Point{1, 0}, orb.Point{1, 1}, orb.Point{2, 0.5})-1) < 1e-9
}

// PolygonResolver - точный поиск: сначала содержание, затем ближайшая граница
type PolygonResolver struct{}

func (PolygonResolver) Name() string { return EnginePlanar }

// Resolve возвращает код первого полигона, содержащего точку.
// Если таких нет, возвращается код полигона с ближайшей внешней границей.
// Паника на некорректной геометрии трактуется как отсутствие данных.
func (r PolygonResolver) Resolve(zones *domain.ZoneCollection, coord domain.Coordinate) (code int, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			code, ok = 0, false
		}
	}()

	if zones.Len() == 0 {
		return 0, false
	}

	pt := coord.Point()

	for i := range zones.Zones {
		zone := &zones.Zones[i]
		if contains(zone.Geometry, pt) {
			return zone.Code, zone.HasCode
		}
	}

	nearest := -1
	best := math.Inf(1)
	for i := range zones.Zones {
		d := boundaryDistance(zones.Zones[i].Geometry, pt)
		if d < best {
			best = d
			nearest = i
		}
	}
	if nearest < 0 {
		return 0, false
	}

	zone := &zones.Zones[nearest]
	return zone.Code, zone.HasCode
}

func contains(g orb.Geometry, pt orb.Point) bool {
	switch geom := g.(type) {
	case orb.Polygon:
		return polygonContains(geom, pt)
	case orb.MultiPolygon:
		for _, p := range geom {
			if polygonContains(p, pt) {
				return true
			}
		}
	}
	return false
}

func polygonContains(p orb.Polygon, pt orb.Point) bool {
	if len(p) == 0 || len(p[0]) == 0 {
		return false
	}
	if !p.Bound().Contains(pt) {
		return false
	}
	return planar.PolygonContains(p, pt)
}

// boundaryDistance - расстояние от точки до внешнего кольца; +Inf для неподдерживаемой геометрии
func boundaryDistance(g orb.Geometry, pt orb.Point) float64 {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) == 0 {
			return math.Inf(1)
		}
		return ringDistance(geom[0], pt)
	case orb.MultiPolygon:
		d := math.Inf(1)
		for _, p := range geom {
			if len(p) == 0 {
				continue
			}
			d = math.Min(d, ringDistance(p[0], pt))
		}
		return d
	}
	return math.Inf(1)
}

func ringDistance(ring orb.Ring, pt orb.Point) float64 {
	switch len(ring) {
	case 0:
		return math.Inf(1)
	case 1:
		return planar.Distance(ring[0], pt)
	}

	d := math.Inf(1)
	for i := 0; i < len(ring)-1; i++ {
		d = math.Min(d, planar.DistanceFromSegment(ring[i], ring[i+1], pt))
	}
	// незамкнутое кольцо
	if !ring.Closed() {
		d = math.Min(d, planar.DistanceFromSegment(ring[len(ring)-1], ring[0], pt))
	}
	return d
}

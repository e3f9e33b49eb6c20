package climate

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/smartproperty-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func square(minX, minY, size float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minX, minY}, {minX + size, minY}, {minX + size, minY + size}, {minX, minY + size}, {minX, minY},
	}}
}

func zones(records ...domain.ZoneRecord) *domain.ZoneCollection {
	return &domain.ZoneCollection{Indicator: domain.IndicatorLST, Zones: records}
}

func zone(g orb.Geometry, code int) domain.ZoneRecord {
	return domain.ZoneRecord{Geometry: g, Code: code, HasCode: true}
}

func TestNewResolver(t *testing.T) {
	assert.IsType(t, PolygonResolver{}, NewResolver(EnginePlanar))
	assert.IsType(t, PolygonResolver{}, NewResolver(""))
	assert.IsType(t, GridResolver{}, NewResolver(EngineGrid))
	assert.Equal(t, EngineGrid, NewResolver(EngineGrid).Name())
}

func TestPolygonResolver_Containment(t *testing.T) {
	r := PolygonResolver{}

	t.Run("centroid of unit square", func(t *testing.T) {
		code, ok := r.Resolve(zones(zone(square(0, 0, 1), 3)), domain.Coordinate{Lat: 0.5, Lng: 0.5})
		assert.True(t, ok)
		assert.Equal(t, 3, code)
	})

	t.Run("first match wins on overlap", func(t *testing.T) {
		c := zones(zone(square(0, 0, 2), 4), zone(square(0, 0, 1), 1))
		code, ok := r.Resolve(c, domain.Coordinate{Lat: 0.5, Lng: 0.5})
		assert.True(t, ok)
		assert.Equal(t, 4, code)
	})

	t.Run("containment beats a nearer boundary of an earlier zone", func(t *testing.T) {
		c := zones(zone(square(1.01, 0, 1), 2), zone(square(0, 0, 1), 5))
		code, ok := r.Resolve(c, domain.Coordinate{Lat: 0.5, Lng: 0.99})
		assert.True(t, ok)
		assert.Equal(t, 5, code)
	})

	t.Run("multipolygon part", func(t *testing.T) {
		mp := orb.MultiPolygon{square(10, 10, 1), square(0, 0, 1)}
		code, ok := r.Resolve(zones(zone(mp, 2)), domain.Coordinate{Lat: 0.5, Lng: 0.5})
		assert.True(t, ok)
		assert.Equal(t, 2, code)
	})

	t.Run("nil and non-polygon geometry skipped", func(t *testing.T) {
		c := zones(
			domain.ZoneRecord{Geometry: nil, Code: 1, HasCode: true},
			zone(orb.Point{0.5, 0.5}, 1),
			zone(square(0, 0, 1), 3),
		)
		code, ok := r.Resolve(c, domain.Coordinate{Lat: 0.5, Lng: 0.5})
		assert.True(t, ok)
		assert.Equal(t, 3, code)
	})

	t.Run("enclosing zone without code is absent", func(t *testing.T) {
		c := zones(domain.ZoneRecord{Geometry: square(0, 0, 1)}, zone(square(0, 0, 1), 3))
		_, ok := r.Resolve(c, domain.Coordinate{Lat: 0.5, Lng: 0.5})
		assert.False(t, ok)
	})
}

func TestPolygonResolver_Nearest(t *testing.T) {
	r := PolygonResolver{}

	t.Run("closer square wins", func(t *testing.T) {
		c := zones(zone(square(0, 0, 1), 1), zone(square(3, 0, 1), 2))
		code, ok := r.Resolve(c, domain.Coordinate{Lat: 0.5, Lng: 2.4})
		assert.True(t, ok)
		assert.Equal(t, 2, code)
	})

	t.Run("tie goes to first in order", func(t *testing.T) {
		c := zones(zone(square(0, 0, 1), 1), zone(square(3, 0, 1), 2))
		code, ok := r.Resolve(c, domain.Coordinate{Lat: 0.5, Lng: 2})
		assert.True(t, ok)
		assert.Equal(t, 1, code)
	})

	t.Run("only unsupported geometry", func(t *testing.T) {
		_, ok := r.Resolve(zones(zone(orb.LineString{{0, 0}, {1, 1}}, 2)), domain.Coordinate{Lat: 5, Lng: 5})
		assert.False(t, ok)
	})
}

func TestPolygonResolver_Empty(t *testing.T) {
	r := PolygonResolver{}

	_, ok := r.Resolve(nil, domain.Coordinate{Lat: 1, Lng: 1})
	assert.False(t, ok)

	_, ok = r.Resolve(zones(), domain.Coordinate{Lat: 1, Lng: 1})
	assert.False(t, ok)
}

func TestPolygonResolver_DegenerateRings(t *testing.T) {
	r := PolygonResolver{}
	c := zones(
		zone(orb.Polygon{}, 1),
		zone(orb.Polygon{orb.Ring{}}, 2),
		zone(orb.Polygon{orb.Ring{{4, 4}}}, 3),
	)

	code, ok := r.Resolve(c, domain.Coordinate{Lat: 0, Lng: 0})
	assert.True(t, ok)
	assert.Equal(t, 3, code)
}

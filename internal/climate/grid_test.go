package climate

import (
	"testing"

	"github.com/smartproperty-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGridCode(t *testing.T) {
	tests := []struct {
		name  string
		coord domain.Coordinate
		want  int
	}{
		{"grid origin", domain.Coordinate{Lat: -6.9, Lng: 107.6}, 5},
		{"north-east corner of region", domain.Coordinate{Lat: -6.8, Lng: 107.7}, 4},
		{"clamped high", domain.Coordinate{Lat: 10, Lng: 120}, 4},
		{"clamped low", domain.Coordinate{Lat: -50, Lng: 50}, 1},
		{"mixed clamp", domain.Coordinate{Lat: 0, Lng: 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GridCode(tt.coord))
		})
	}
}

func TestGridResolver_IgnoresZones(t *testing.T) {
	coord := domain.Coordinate{Lat: -6.9, Lng: 107.6}
	c := zones(zone(square(107, -7, 1), 1))

	code, ok := GridResolver{}.Resolve(c, coord)
	assert.True(t, ok)
	assert.Equal(t, GridCode(coord), code)

	code, ok = GridResolver{}.Resolve(nil, coord)
	assert.True(t, ok)
	assert.Equal(t, 5, code)
}

func TestGridCode_AlwaysInRange(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lng := -180.0; lng <= 180; lng += 15 {
			code := GridCode(domain.Coordinate{Lat: lat, Lng: lng})
			assert.GreaterOrEqual(t, code, 1)
			assert.LessOrEqual(t, code, MaxClassificationCode)
		}
	}
}

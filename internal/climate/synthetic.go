package climate

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/pkg/utils"
)

// Веса общей оценки в синтетических данных
const (
	syntheticWeightLST   = 0.3
	syntheticWeightNDVI  = 0.3
	syntheticWeightUTFVI = 0.2
	syntheticWeightUHI   = 0.2
)

const jitterAmplitude = 10.0

type regionBases struct {
	lst, ndvi, utfvi, uhi float64
}

var (
	basesInRegion  = regionBases{lst: 65, ndvi: 70, utfvi: 60, uhi: 65}
	basesOutside   = regionBases{lst: 60, ndvi: 55, utfvi: 50, uhi: 55}
	northBonus     = regionBases{lst: 15, ndvi: 10, utfvi: 5, uhi: 10}
	centralPenalty = regionBases{lst: -10, ndvi: -15, utfvi: -5, uhi: -10}
)

func (b regionBases) add(o regionBases) regionBases {
	return regionBases{lst: b.lst + o.lst, ndvi: b.ndvi + o.ndvi, utfvi: b.utfvi + o.utfvi, uhi: b.uhi + o.uhi}
}

// inRegion - bounding box Бандунга
func inRegion(c domain.Coordinate) bool {
	return c.Lat >= -7.0 && c.Lat <= -6.8 && c.Lng >= 107.5 && c.Lng <= 107.7
}

// inNorth - северная часть (выше над уровнем моря, прохладнее)
func inNorth(c domain.Coordinate) bool {
	return c.Lat >= -6.89
}

// inCentral - городской центр
func inCentral(c domain.Coordinate) bool {
	return c.Lat >= -6.92 && c.Lat < -6.89 && c.Lng >= 107.58 && c.Lng <= 107.63
}

func regionalBases(c domain.Coordinate) regionBases {
	if !inRegion(c) {
		return basesOutside
	}
	switch {
	case inNorth(c):
		return basesInRegion.add(northBonus)
	case inCentral(c):
		return basesInRegion.add(centralPenalty)
	}
	return basesInRegion
}

// syntheticSeed возвращает int(|lat*1000| + |lng*1000|)
func syntheticSeed(c domain.Coordinate) int64 {
	return int64(math.Abs(c.Lat*1000) + math.Abs(c.Lng*1000))
}

// newSyntheticRand создает новый генератор для точки. Общий генератор не используется.
func newSyntheticRand(c domain.Coordinate) *rand.Rand {
	var buf [8]byte
	seed := uint64(syntheticSeed(c))
	binary.LittleEndian.PutUint64(buf[:], seed)
	return rand.New(rand.NewPCG(xxhash.Sum64(buf[:]), seed))
}

// Synthesize строит детерминированные оценки для точки.
// Одна и та же координата всегда дает одинаковый результат.
func Synthesize(coord domain.Coordinate) domain.ClimateScores {
	bases := regionalBases(coord)
	r := newSyntheticRand(coord)

	jitter := func(base float64) float64 {
		return utils.ClampFloat(base+(r.Float64()*jitterAmplitude-jitterAmplitude/2), 0, 100)
	}

	lst := jitter(bases.lst)
	ndvi := jitter(bases.ndvi)
	utfvi := jitter(bases.utfvi)
	uhi := jitter(bases.uhi)

	overall := lst*syntheticWeightLST + ndvi*syntheticWeightNDVI +
		utfvi*syntheticWeightUTFVI + uhi*syntheticWeightUHI

	return domain.ClimateScores{
		LST:     utils.RoundHalfEven(lst),
		NDVI:    utils.RoundHalfEven(ndvi),
		UTFVI:   utils.RoundHalfEven(utfvi),
		UHI:     utils.RoundHalfEven(uhi),
		Overall: utils.RoundHalfEven(overall),
	}
}

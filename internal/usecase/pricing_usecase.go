package usecase

import (
	"context"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/observability"
	"github.com/smartproperty-service/internal/pkg/validator"
	"github.com/smartproperty-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// HeuristicConfidence - уверенность, сообщаемая для любой оценки цены
	HeuristicConfidence = 0.85
	// priceRounding - цена округляется до ближайших 10 млн
	priceRounding = 10_000_000
	// neutralClimateScore - значение для оценок, не переданных клиентом
	neutralClimateScore = 50
)

// ClimateScorer - источник климатических оценок точки
type ClimateScorer interface {
	GetClimateScores(ctx context.Context, coord domain.Coordinate) domain.ClimateScores
}

// PricingUseCase - оценка стоимости объекта: внешняя модель, при сбое эвристика
type PricingUseCase struct {
	climate    ClimateScorer
	priceModel repository.PriceModelRepository
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewPricingUseCase создает PricingUseCase. priceModel может быть nil.
func NewPricingUseCase(
	climate ClimateScorer,
	priceModel repository.PriceModelRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *PricingUseCase {
	return &PricingUseCase{
		climate:    climate,
		priceModel: priceModel,
		metrics:    metrics,
		logger:     logger,
	}
}

// PredictPrice оценивает стоимость объекта
func (uc *PricingUseCase) PredictPrice(ctx context.Context, req dto.PredictPriceRequest) (*domain.PriceEstimate, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	coord := domain.Coordinate{Lat: *req.Location.Latitude, Lng: *req.Location.Longitude}
	scores := uc.resolveScores(ctx, coord, req.ClimateScores)

	if uc.priceModel != nil {
		price, err := uc.priceModel.Predict(ctx, buildFeatures(req, scores))
		if err == nil {
			uc.metrics.PricePredictions.WithLabelValues(string(domain.PriceSourceModel)).Inc()
			return &domain.PriceEstimate{
				PredictedPrice: price,
				Confidence:     HeuristicConfidence,
				Source:         domain.PriceSourceModel,
				ClimateScores:  scores,
			}, nil
		}
		uc.logger.Warn("Price model unavailable, falling back to heuristic", zap.Error(err))
	}

	estimate := EstimateHeuristic(req, scores)
	uc.metrics.PricePredictions.WithLabelValues(string(domain.PriceSourceHeuristic)).Inc()
	return &estimate, nil
}

// resolveScores - оценки клиента имеют приоритет, иначе считаются конвейером
func (uc *PricingUseCase) resolveScores(ctx context.Context, coord domain.Coordinate, in *dto.ClimateScoresInput) domain.ClimateScores {
	if in == nil || in.IsEmpty() {
		return uc.climate.GetClimateScores(ctx, coord)
	}
	return domain.ClimateScores{
		LST:     intOr(in.LST, neutralClimateScore),
		NDVI:    intOr(in.NDVI, neutralClimateScore),
		UTFVI:   intOr(in.UTFVI, neutralClimateScore),
		UHI:     intOr(in.UHI, neutralClimateScore),
		Overall: intOr(in.Overall, neutralClimateScore),
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func buildFeatures(req dto.PredictPriceRequest, scores domain.ClimateScores) domain.PriceFeatures {
	return domain.PriceFeatures{
		PropertyType:      req.PropertyType,
		Bedrooms:          *req.Bedrooms,
		Certificate:       req.Certificate,
		LandPricePerMeter: *req.LandPricePerMeter,
		LandArea:          *req.LandArea,
		City:              req.City,
		District:          req.District,
		LSTScore:          scores.LST,
		NDVIScore:         scores.NDVI,
		UTFVIScore:        scores.UTFVI,
		UHIScore:          scores.UHI,
		OverallScore:      scores.Overall,
	}
}

// EstimateHeuristic - детерминированная оценка цены по множителям.
// Запрос должен быть провалидирован.
func EstimateHeuristic(req dto.PredictPriceRequest, scores domain.ClimateScores) domain.PriceEstimate {
	landArea := *req.LandArea
	pricePerMeter := *req.LandPricePerMeter
	bedrooms := *req.Bedrooms

	base := landArea * pricePerMeter
	certMul := CertificateMultiplier(req.Certificate)
	typeMul := PropertyTypeMultiplier(req.PropertyType)
	bedMul := 1 + 0.1*float64(bedrooms)
	climateMul := 1 + float64(scores.Overall-neutralClimateScore)/100

	seed := int64(landArea) + int64(bedrooms) + int64(pricePerMeter)
	jitter := 1 + (newPriceRand(seed).Float64()*10-5)/100

	price := base * certMul * typeMul * bedMul * climateMul * jitter
	price = math.Round(price/priceRounding) * priceRounding

	return domain.PriceEstimate{
		PredictedPrice: price,
		Confidence:     HeuristicConfidence,
		Source:         domain.PriceSourceHeuristic,
		Factors: &domain.PriceFactors{
			BasePrice:          base,
			CertificateImpact:  (certMul - 1) * 100,
			PropertyTypeImpact: (typeMul - 1) * 100,
			BedroomsImpact:     (bedMul - 1) * 100,
			ClimateImpact:      (climateMul - 1) * 100,
		},
		ClimateScores: scores,
	}
}

// CertificateMultiplier - множитель правового статуса
func CertificateMultiplier(certificate string) float64 {
	switch {
	case certificate == "SHM - Sertifikat Hak Milik":
		return 1.2
	case certificate == "HGB - Hak Guna Bangunan":
		return 1.1
	case strings.Contains(certificate, "SHM"):
		return 1.15
	case strings.Contains(certificate, "HGB"):
		return 1.05
	default:
		return 1.0
	}
}

// PropertyTypeMultiplier - множитель типа объекта, без учета регистра
func PropertyTypeMultiplier(propertyType string) float64 {
	t := strings.ToUpper(propertyType)
	switch {
	case strings.Contains(t, "MEWAH"), strings.Contains(t, "LUXURY"):
		return 1.5
	case strings.Contains(t, "VILLA"):
		return 1.4
	case strings.Contains(t, "TOWN"):
		return 1.3
	case strings.Contains(t, "BARU"), strings.Contains(t, "NEW"):
		return 1.2
	default:
		return 1.0
	}
}

func newPriceRand(seed int64) *rand.Rand {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	return rand.New(rand.NewPCG(xxhash.Sum64(buf[:]), uint64(seed)))
}

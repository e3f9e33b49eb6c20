package usecase

import (
	"context"
	"fmt"
	"time"

	geo "github.com/paulmach/orb/geojson"
	"github.com/smartproperty-service/internal/climate"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/observability"
	"github.com/smartproperty-service/internal/pkg/errors"
	"github.com/smartproperty-service/internal/pkg/utils"
	"github.com/smartproperty-service/internal/pkg/validator"
	"github.com/smartproperty-service/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// aggregateWeight - вес каждого индикатора в общей оценке по реальным зонам
	aggregateWeight = 0.25
	// batchConcurrency - число точек пакета, считаемых одновременно
	batchConcurrency = 8
)

// ClimateUseCase - конвейер климатических оценок.
// Для каждой точки: слой зон -> резолвер -> нормализация,
// недостающие индикаторы заполняются синтетическими оценками той же точки.
type ClimateUseCase struct {
	catalog   repository.ZoneCatalogRepository
	resolver  climate.Resolver
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewClimateUseCase создает ClimateUseCase. cacheRepo может быть nil.
func NewClimateUseCase(
	catalog repository.ZoneCatalogRepository,
	resolver climate.Resolver,
	cacheRepo repository.CacheRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ClimateUseCase {
	return &ClimateUseCase{
		catalog:   catalog,
		resolver:  resolver,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetClimateScores возвращает пять оценок точки. Никогда не завершается ошибкой;
// координата должна быть проверена вызывающим.
func (uc *ClimateUseCase) GetClimateScores(ctx context.Context, coord domain.Coordinate) domain.ClimateScores {
	return uc.Assess(ctx, coord).Scores
}

// Assess выполняет конвейер и сообщает происхождение оценок
func (uc *ClimateUseCase) Assess(ctx context.Context, coord domain.Coordinate) domain.ClimateAssessment {
	zoneScores := make(map[domain.Indicator]float64, len(domain.Indicators))
	resolved := make([]domain.Indicator, 0, len(domain.Indicators))

	for _, ind := range domain.Indicators {
		if score, ok := uc.resolveIndicator(ctx, ind, coord); ok {
			zoneScores[ind] = score
			resolved = append(resolved, ind)
		}
	}

	if len(zoneScores) == 0 {
		uc.logger.Debug("No zone data resolved, using synthetic scores",
			zap.Float64("lat", coord.Lat), zap.Float64("lng", coord.Lng))
		uc.metrics.ClimateResolutions.WithLabelValues(string(domain.ScoreSourceSynthetic)).Inc()
		return domain.ClimateAssessment{
			Coordinate: coord,
			Scores:     climate.Synthesize(coord),
			Source:     domain.ScoreSourceSynthetic,
			Resolved:   resolved,
		}
	}

	synthetic := climate.Synthesize(coord)

	var scores domain.ClimateScores
	var overall float64
	for _, ind := range domain.Indicators {
		v, ok := zoneScores[ind]
		if !ok {
			uc.logger.Debug("Indicator not resolved, using synthetic score",
				zap.String("indicator", string(ind)),
				zap.Float64("lat", coord.Lat), zap.Float64("lng", coord.Lng))
			v = float64(synthetic.Get(ind))
		}
		scores.Set(ind, utils.RoundHalfEven(v))
		overall += v * aggregateWeight
	}
	scores.Overall = utils.RoundHalfEven(overall)

	source := domain.ScoreSourceZones
	if len(zoneScores) < len(domain.Indicators) {
		source = domain.ScoreSourcePartial
	}
	uc.metrics.ClimateResolutions.WithLabelValues(string(source)).Inc()

	return domain.ClimateAssessment{
		Coordinate: coord,
		Scores:     scores,
		Source:     source,
		Resolved:   resolved,
	}
}

// resolveIndicator - слой зон -> код -> оценка. Любой сбой означает отсутствие оценки.
func (uc *ClimateUseCase) resolveIndicator(ctx context.Context, ind domain.Indicator, coord domain.Coordinate) (score float64, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.logger.Warn("Indicator resolution failed",
				zap.String("indicator", string(ind)),
				zap.Any("panic", r))
			score, ok = 0, false
		}
	}()

	layer, loaded := uc.catalog.Load(ctx, ind)
	if !loaded {
		return 0, false
	}

	code, found := uc.resolver.Resolve(layer, coord)
	score, ok = climate.Normalize(code, found, ind)
	if found && !ok {
		uc.logger.Warn("Classification code out of range",
			zap.String("indicator", string(ind)),
			zap.Int("code", code))
	}
	return score, ok
}

// ScoreLocation - оценки точки для HTTP API, с проверкой координат и кешем
func (uc *ClimateUseCase) ScoreLocation(ctx context.Context, coord domain.Coordinate) (*dto.ClimateScoresResponse, error) {
	if !utils.ValidateCoordinates(coord.Lat, coord.Lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetClimateScores(ctx, coord)
		switch {
		case err != nil:
			uc.metrics.ClimateCache.WithLabelValues("error").Inc()
			uc.logger.Warn("Climate cache read failed", zap.Error(err))
		case cached != nil:
			uc.metrics.ClimateCache.WithLabelValues("hit").Inc()
			resp := dto.NewClimateScoresResponse(*cached)
			resp.Location = coord
			return &resp, nil
		default:
			uc.metrics.ClimateCache.WithLabelValues("miss").Inc()
		}
	}

	assessment := uc.Assess(ctx, coord)

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetClimateScores(ctx, &assessment, uc.cacheTTL); err != nil {
			uc.logger.Warn("Climate cache write failed", zap.Error(err))
		}
	}

	resp := dto.NewClimateScoresResponse(assessment)
	return &resp, nil
}

// GetClimateScoresBatch считает оценки нескольких точек параллельно, порядок сохраняется
func (uc *ClimateUseCase) GetClimateScoresBatch(ctx context.Context, req dto.BatchClimateScoresRequest) (*dto.BatchClimateScoresResponse, error) {
	if len(req.Points) == 0 || len(req.Points) > dto.MaxBatchPoints {
		return nil, errors.ErrInvalidRequest.WithMessage(
			fmt.Sprintf("points must contain between 1 and %d coordinates", dto.MaxBatchPoints))
	}
	for i, p := range req.Points {
		if !utils.ValidateCoordinates(p.Lat, p.Lng) {
			return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"point_index": i})
		}
	}

	results := make([]dto.ClimateScoresResponse, len(req.Points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, p := range req.Points {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := uc.ScoreLocation(gctx, p)
			if err != nil {
				return err
			}
			results[i] = *resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.logger.Debug("Climate batch scored", zap.Int("points", len(req.Points)))
	return &dto.BatchClimateScoresResponse{Results: results}, nil
}

// GetLayerPage возвращает страницу исходных features слоя
func (uc *ClimateUseCase) GetLayerPage(ctx context.Context, layerName string, req dto.LayerPageRequest) (*dto.LayerPageResponse, error) {
	ind, err := domain.ParseIndicator(layerName)
	if err != nil {
		return nil, errors.ErrInvalidLayer.WithDetails(map[string]interface{}{"layer": layerName})
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	layer, ok := uc.catalog.Load(ctx, ind)
	if !ok || layer.Features == nil {
		return nil, errors.ErrLayerNotFound.WithDetails(map[string]interface{}{"layer": string(ind)})
	}

	features := layer.Features.Features
	total := len(features)

	// Сравнение по номеру страницы, чтобы (Page-1)*PerPage не переполнялось
	start := total
	if req.Page-1 < total/req.PerPage+1 {
		start = min((req.Page-1)*req.PerPage, total)
	}
	end := start + min(req.PerPage, total-start)

	page := features[start:end]
	if page == nil {
		page = []*geo.Feature{}
	}

	return &dto.LayerPageResponse{
		Page:          req.Page,
		PerPage:       req.PerPage,
		TotalFeatures: total,
		TotalPages:    (total + req.PerPage - 1) / req.PerPage,
		Type:          "FeatureCollection",
		Features:      page,
	}, nil
}

// GetRiskLayers возвращает описания слоев риска для легенды карты
func (uc *ClimateUseCase) GetRiskLayers() []domain.RiskLayer {
	return riskLayers
}

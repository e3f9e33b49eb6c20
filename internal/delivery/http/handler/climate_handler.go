package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/pkg/errors"
	"github.com/smartproperty-service/internal/pkg/utils"
	"github.com/smartproperty-service/internal/usecase"
	"github.com/smartproperty-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultLayerPage    = 1
	defaultLayerPerPage = 100
)

// ClimateHandler - обработчик климатических оценок и слоев
type ClimateHandler struct {
	climateUC *usecase.ClimateUseCase
	logger    *zap.Logger
}

// NewClimateHandler - создание нового ClimateHandler
func NewClimateHandler(climateUC *usecase.ClimateUseCase, logger *zap.Logger) *ClimateHandler {
	return &ClimateHandler{
		climateUC: climateUC,
		logger:    logger,
	}
}

// GetScores godoc
// @Summary Климатические оценки точки
// @Description Возвращает оценки LST, NDVI, UTFVI, UHI и общую оценку (0-100, больше лучше). Если данных зон нет, оценки синтетические.
// @Tags Climate
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=dto.ClimateScoresResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/climate/scores [get]
func (h *ClimateHandler) GetScores(c *fiber.Ctx) error {
	coord, err := parseCoordinate(c.Query("lat"), c.Query("lng"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.climateUC.ScoreLocation(c.Context(), coord)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetScoresBatch godoc
// @Summary Климатические оценки для нескольких точек
// @Description До 100 точек за запрос, результаты в порядке точек запроса
// @Tags Climate
// @Accept json
// @Produce json
// @Param request body dto.BatchClimateScoresRequest true "Точки"
// @Success 200 {object} utils.SuccessResponse{data=dto.BatchClimateScoresResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/climate/scores/batch [post]
func (h *ClimateHandler) GetScoresBatch(c *fiber.Ctx) error {
	var req dto.BatchClimateScoresRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	result, err := h.climateUC.GetClimateScoresBatch(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Results),
	})
}

// GetRiskLayers godoc
// @Summary Легенды слоев риска
// @Tags Climate
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RiskLayer}
// @Router /api/v1/climate/risk-layers [get]
func (h *ClimateHandler) GetRiskLayers(c *fiber.Ctx) error {
	layers := h.climateUC.GetRiskLayers()
	return utils.SendSuccess(c, layers, &utils.Meta{Total: len(layers)})
}

// GetLayer godoc
// @Summary Страница исходного слоя зон
// @Description Возвращает GeoJSON features слоя индикатора постранично
// @Tags Climate
// @Produce json
// @Param indicator path string true "Индикатор (lst, ndvi, utfvi, uhi)"
// @Param page query int false "Номер страницы" default(1)
// @Param per_page query int false "Размер страницы (до 1000)" default(100)
// @Success 200 {object} dto.LayerPageResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/layers/{indicator} [get]
func (h *ClimateHandler) GetLayer(c *fiber.Ctx) error {
	req := dto.LayerPageRequest{Page: defaultLayerPage, PerPage: defaultLayerPerPage}
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid pagination parameters"))
	}

	result, err := h.climateUC.GetLayerPage(c.Context(), c.Params("indicator"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	// GeoJSON отдается без обертки data, чтобы ответ читали картографические клиенты
	return c.JSON(result)
}

func parseCoordinate(latParam, lngParam string) (domain.Coordinate, error) {
	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return domain.Coordinate{}, errors.ErrInvalidCoordinates.WithMessage("lat must be a number")
	}
	lng, err := strconv.ParseFloat(lngParam, 64)
	if err != nil {
		return domain.Coordinate{}, errors.ErrInvalidCoordinates.WithMessage("lng must be a number")
	}
	return domain.Coordinate{Lat: lat, Lng: lng}, nil
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartproperty-service/internal/pkg/utils"
	"github.com/smartproperty-service/internal/usecase"
	"go.uber.org/zap"
)

// AnalyticsHandler - обработчик аналитики по объектам
type AnalyticsHandler struct {
	analyticsUC *usecase.AnalyticsUseCase
	logger      *zap.Logger
}

// NewAnalyticsHandler - создание нового AnalyticsHandler
func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: analyticsUC,
		logger:      logger,
	}
}

// PriceByDistrict godoc
// @Summary Средняя цена по районам
// @Tags Analytics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.DistrictPrice}
// @Router /api/v1/analytics/price-by-district [get]
func (h *AnalyticsHandler) PriceByDistrict(c *fiber.Ctx) error {
	result, err := h.analyticsUC.PriceByDistrict(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// ClimateByDistrict godoc
// @Summary Средние климатические оценки по районам
// @Tags Analytics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.DistrictClimate}
// @Router /api/v1/analytics/climate-by-district [get]
func (h *AnalyticsHandler) ClimateByDistrict(c *fiber.Ctx) error {
	result, err := h.analyticsUC.ClimateByDistrict(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result)})
}

// DashboardSummary godoc
// @Summary Сводка для аналитической панели
// @Tags Analytics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.DashboardSummary}
// @Router /api/v1/analytics/dashboard-summary [get]
func (h *AnalyticsHandler) DashboardSummary(c *fiber.Ctx) error {
	result, err := h.analyticsUC.DashboardSummary(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

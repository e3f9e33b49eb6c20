package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartproperty-service/internal/pkg/errors"
	"github.com/smartproperty-service/internal/pkg/utils"
	"github.com/smartproperty-service/internal/usecase"
	"github.com/smartproperty-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// PricingHandler - обработчик оценки стоимости
type PricingHandler struct {
	pricingUC *usecase.PricingUseCase
	logger    *zap.Logger
}

// NewPricingHandler - создание нового PricingHandler
func NewPricingHandler(pricingUC *usecase.PricingUseCase, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{
		pricingUC: pricingUC,
		logger:    logger,
	}
}

// Predict godoc
// @Summary Оценка стоимости объекта
// @Description Оценивает цену внешней моделью, при ее недоступности эвристикой по множителям. Климатические оценки берутся из запроса или считаются по координатам.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.PredictPriceRequest true "Параметры объекта"
// @Success 200 {object} utils.SuccessResponse{data=domain.PriceEstimate}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/price/predict [post]
func (h *PricingHandler) Predict(c *fiber.Ctx) error {
	var req dto.PredictPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	result, err := h.pricingUC.PredictPrice(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/smartproperty-service/internal/pkg/errors"
	"github.com/smartproperty-service/internal/pkg/utils"
	"github.com/smartproperty-service/internal/usecase"
	"github.com/smartproperty-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// PropertyHandler - обработчик объектов недвижимости
type PropertyHandler struct {
	propertyUC *usecase.PropertyUseCase
	logger     *zap.Logger
}

// NewPropertyHandler - создание нового PropertyHandler
func NewPropertyHandler(propertyUC *usecase.PropertyUseCase, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: propertyUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список объектов
// @Tags Properties
// @Produce json
// @Param min_price query int false "Минимальная цена"
// @Param max_price query int false "Максимальная цена"
// @Param min_score query int false "Минимальная климатическая оценка"
// @Param bedrooms query int false "Минимум спален"
// @Param bathrooms query int false "Минимум ванных"
// @Success 200 {object} utils.SuccessResponse{data=dto.PropertyListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	var req dto.PropertyListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}

	result, err := h.propertyUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Count})
}

// Get godoc
// @Summary Объект по id
// @Tags Properties
// @Produce json
// @Param id path int true "ID объекта"
// @Success 200 {object} utils.SuccessResponse{data=domain.Property}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/properties/{id} [get]
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid property ID format"))
	}

	result, err := h.propertyUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Compare godoc
// @Summary Сравнение объектов
// @Tags Properties
// @Produce json
// @Param ids query string true "ID через запятую"
// @Success 200 {object} utils.SuccessResponse{data=dto.PropertyListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/properties/compare [get]
func (h *PropertyHandler) Compare(c *fiber.Ctx) error {
	result, err := h.propertyUC.Compare(c.Context(), c.Query("ids"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Count})
}

// Recommend godoc
// @Summary Рекомендации объектов
// @Description Три лучших объекта по общей климатической оценке или по выбранному фактору риска
// @Tags Properties
// @Produce json
// @Param min_price query int false "Минимальная цена"
// @Param max_price query int false "Максимальная цена"
// @Param bedrooms query int false "Минимум спален"
// @Param priority query string false "overall, flood, temperature, air_quality, landslide" default(overall)
// @Success 200 {object} utils.SuccessResponse{data=dto.PropertyListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/properties/recommend [get]
func (h *PropertyHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}

	result, err := h.propertyUC.Recommend(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Count})
}

package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/smartproperty-service/internal/domain"
	"github.com/smartproperty-service/internal/domain/repository"
	"github.com/smartproperty-service/internal/pkg/errors"
	"github.com/smartproperty-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// MapHandler - прокси подложки карты MAPID. Ключ API остается на сервере.
type MapHandler struct {
	basemap repository.BasemapRepository
	logger  *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(basemap repository.BasemapRepository, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		basemap: basemap,
		logger:  logger,
	}
}

// GetStyle godoc
// @Summary Стиль подложки карты
// @Tags Map
// @Produce json
// @Param style query string false "Имя стиля" default(basic)
// @Success 200 {object} object
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/map/style [get]
func (h *MapHandler) GetStyle(c *fiber.Ctx) error {
	res, err := h.basemap.GetStyle(c.Context(), c.Query("style"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendResource(c, res)
}

// GetResource godoc
// @Summary Ресурс подложки (тайлы, шрифты, спрайты)
// @Tags Map
// @Param path path string true "Путь ресурса"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/map/resources/{path} [get]
func (h *MapHandler) GetResource(c *fiber.Ctx) error {
	path, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid resource path"))
	}
	query := string(c.Request().URI().QueryString())

	res, err := h.basemap.GetResource(c.Context(), path, query)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendResource(c, res)
}

func sendResource(c *fiber.Ctx, res *domain.BasemapResource) error {
	c.Set(fiber.HeaderContentType, res.ContentType)
	return c.Status(res.StatusCode).Send(res.Body)
}

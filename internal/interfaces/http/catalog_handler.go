package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/application/usecase"
	"github.com/gacc-hospital/snd-stock/internal/domain"
)

// CatalogHandler altas y listados de categorías y unidades.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCatalogRequest  true  "name"
// @Success      201   {object}  dto.CatalogResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	return h.create(c, h.uc.CreateCategory)
}

// CreateUnit godoc
// @Summary      Crear unidad de medida
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCatalogRequest  true  "name"
// @Success      201   {object}  dto.CatalogResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *CatalogHandler) CreateUnit(c *fiber.Ctx) error {
	return h.create(c, h.uc.CreateUnit)
}

func (h *CatalogHandler) create(c *fiber.Ctx, fn func(dto.CreateCatalogRequest, string) (*dto.CatalogResponse, error)) error {
	var in dto.CreateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := fn(in, GetSession(c).Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre ya existe"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CatalogResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListUnits godoc
// @Summary      Listar unidades
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CatalogResponse
// @Router       /api/units [get]
func (h *CatalogHandler) ListUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListUnits()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

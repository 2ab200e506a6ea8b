package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/application/usecase"
	"github.com/seu-usuario/farmacia-api/internal/domain"
)

// CategoryHandler atende as requisições HTTP de categorias.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List devolve todas as categorias ativas com a contagem de produtos.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve uma categoria com seus produtos ativos.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, domain.ErrCategoryNotFound)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create registra uma nova categoria.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update altera nome e descrição de uma categoria.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, domain.ErrCategoryNotFound)
	if !ok {
		return nil
	}
	var in dto.UpdateCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete desativa uma categoria sem produtos ativos.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, domain.ErrCategoryNotFound)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

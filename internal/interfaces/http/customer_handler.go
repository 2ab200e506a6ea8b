package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/application/usecase"
	"github.com/seu-usuario/farmacia-api/internal/domain"
)

// CustomerHandler atende as requisições HTTP de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List devolve clientes ativos paginados. Aceita page, limit e search.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	search := c.Query("search")

	out, err := h.uc.List(page, limit, search)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devolve um cliente ativo.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, domain.ErrCustomerNotFound)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create registra um cliente sem credenciais de acesso.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update altera os dados cadastrais de um cliente.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, domain.ErrCustomerNotFound)
	if !ok {
		return nil
	}
	var in dto.UpdateCustomerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete desativa um cliente.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, domain.ErrCustomerNotFound)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

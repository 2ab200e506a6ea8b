package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/domain"
)

// classify mapeia erro de domínio para status e código HTTP.
// Ausência -> 404, unicidade/dependência -> 409, regra de entrada -> 400,
// credencial/token -> 401, resto -> 500.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrCategoryNameTaken),
		errors.Is(err, domain.ErrBarcodeTaken),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrCPFTaken),
		errors.Is(err, domain.ErrCategoryHasProducts),
		errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrEmailNotFound),
		errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// parseIDParam valida o formato do :id antes de tocar o banco. Um id fora
// do formato uuid equivale a recurso inexistente (404), igual nos três
// backends; devolve false quando a resposta já foi escrita.
func parseIDParam(c *fiber.Ctx, notFound error) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		_ = respondError(c, notFound)
		return "", false
	}
	return id, true
}

// respondError devolve o corpo de erro padronizado. Erros inesperados são
// logados com detalhe e saem genéricos para o cliente.
func respondError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("erro inesperado")
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: "erro interno do servidor"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

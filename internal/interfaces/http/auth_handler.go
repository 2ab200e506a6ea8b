package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/farmacia-api/internal/application/auth"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
)

// AuthHandler atende registro, login e gestão de senha dos clientes.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register cria um cliente com credenciais e já devolve o token.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login autentica por email e senha e devolve o token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Profile devolve os dados do cliente autenticado.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(GetCustomerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword troca a senha do cliente autenticado conferindo a atual.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.ChangePassword(GetCustomerID(c), in.OldPassword, in.NewPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "senha alterada com sucesso"})
}

// ResetPassword gera uma senha temporária e a envia por email. O segredo
// nunca aparece na resposta.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.ResetPassword(in.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "nova senha enviada por email"})
}

// Logout apenas confirma; o descarte do token fica a cargo do cliente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "logout realizado com sucesso"})
}

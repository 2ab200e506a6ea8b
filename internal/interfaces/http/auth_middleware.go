package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/pkg/jwt"
)

// Chaves de Locals preenchidas pelo middleware de autenticação.
const (
	LocalCustomerID    = "customer_id"
	LocalCustomerEmail = "customer_email"
	LocalCustomerName  = "customer_name"
)

// AuthMiddleware valida o Bearer Token JWT e grava os dados do cliente em
// c.Locals. Token ausente e token inválido respondem igualmente com 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token de acesso requerido"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalCustomerID, claims.CustomerID)
		c.Locals(LocalCustomerEmail, claims.Email)
		c.Locals(LocalCustomerName, claims.Name)
		return c.Next()
	}
}

// OptionalAuth preenche os Locals quando um token válido acompanha a
// requisição, mas nunca bloqueia: sem token ou com token inválido a rota
// segue como anônima.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				c.Locals(LocalCustomerID, claims.CustomerID)
				c.Locals(LocalCustomerEmail, claims.Email)
				c.Locals(LocalCustomerName, claims.Name)
			}
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetCustomerID devolve o ID do cliente autenticado (após o middleware).
func GetCustomerID(c *fiber.Ctx) string {
	v := c.Locals(LocalCustomerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCustomerEmail devolve o email do cliente autenticado (após o middleware).
func GetCustomerEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalCustomerEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/pkg/token"
)

// Locals keys del contexto Fiber.
const (
	LocalClaims = "claims"
	LocalToken  = "token"
)

// SesionMiddleware carga el token almacenado, lo decodifica y deja claims y
// token en c.Locals. Sin token utilizable responde 401 con Redirect; el
// manager ya limpió el token si estaba corrupto.
func SesionMiddleware(sesiones *sesion.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := sesiones.Claims()
		if err != nil {
			return responder(c, sesiones, domain.ErrSesionExpirada)
		}
		c.Locals(LocalClaims, claims)
		c.Locals(LocalToken, sesiones.Token())
		return c.Next()
	}
}

// GetClaims devuelve los claims del contexto (después de SesionMiddleware).
func GetClaims(c *fiber.Ctx) *token.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}

// GetToken devuelve el token crudo del contexto (después de SesionMiddleware).
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

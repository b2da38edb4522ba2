package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/internal/domain/access"
	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
)

// fuenteCargos contrato mínimo que necesita la resolución de acceso.
// Lo implementa *restapi.Client; la interfaz evita el import y permite stubs.
type fuenteCargos interface {
	ListarCargos(ctx context.Context, token string) ([]entity.Cargo, error)
}

// RequerirModulo verifica que el usuario firmado tenga el módulo concedido.
// Debe usarse después de SesionMiddleware.
//
// La resolución degrada en vez de fallar: si el backend no responde, el
// conjunto queda en {dashboard} y cualquier otro módulo responde 403. La
// autorización definitiva la aplica el backend en cada petición; este gate
// solo replica lo que el menú deja ver.
func RequerirModulo(modulo string, cargos fuenteCargos) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := GetToken(c)
		resultado := access.Resolver(c.Context(), tok, func(ctx context.Context) ([]entity.Cargo, error) {
			return cargos.ListarCargos(ctx, tok)
		})
		if resultado.SinSesion {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:     "SESION_EXPIRADA",
				Message:  "La sesión expiró, vuelva a iniciar sesión",
				Redirect: true,
			})
		}
		if !resultado.Permisos.Contiene(modulo) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULO_DENEGADO",
				Message: "No tiene acceso al módulo '" + modulo + "'",
			})
		}
		return c.Next()
	}
}

// resolverModulos calcula los módulos visibles para la sesión vigente.
func resolverModulos(c *fiber.Ctx, sesiones *sesion.Manager, cargos fuenteCargos) (access.Resultado, error) {
	tok := sesiones.Token()
	resultado := access.Resolver(c.Context(), tok, func(ctx context.Context) ([]entity.Cargo, error) {
		return cargos.ListarCargos(ctx, tok)
	})
	if resultado.LimpiarToken {
		sesiones.Invalidar("token corrupto")
	}
	if resultado.SinSesion {
		return resultado, domain.ErrSesionExpirada
	}
	return resultado, nil
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/restapi"
	"github.com/tu-usuario/rrhh-admin/internal/validation"
)

// PerfilHandler edición del perfil propio: nombre de usuario y contraseña.
type PerfilHandler struct {
	client   *restapi.Client
	val      *validation.Validador
	sesiones *sesion.Manager
}

// NewPerfilHandler construye el handler.
func NewPerfilHandler(client *restapi.Client, val *validation.Validador, sesiones *sesion.Manager) *PerfilHandler {
	return &PerfilHandler{client: client, val: val, sesiones: sesiones}
}

// Actualizar cambia el nombre de usuario de la cuenta firmada.
func (h *PerfilHandler) Actualizar(c *fiber.Ctx) error {
	var req dto.PerfilRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "cuerpo inválido"})
	}
	if err := h.val.Validar(&req); err != nil {
		return responder(c, h.sesiones, err)
	}

	if err := h.client.ActualizarPerfil(c.Context(), GetToken(c), req.Username); err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(dto.MutacionResponse{Toast: dto.ToastExito("Perfil actualizado correctamente")})
}

// CambiarPassword cambia la contraseña. La confirmación y el largo mínimo se
// validan aquí; la contraseña actual la verifica el backend.
func (h *PerfilHandler) CambiarPassword(c *fiber.Ctx) error {
	var req dto.PasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "cuerpo inválido"})
	}
	if err := h.val.Validar(&req); err != nil {
		return responder(c, h.sesiones, err)
	}

	if err := h.client.CambiarPassword(c.Context(), GetToken(c), req.Actual, req.Nueva); err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(dto.MutacionResponse{Toast: dto.ToastExito("Contraseña actualizada correctamente")})
}

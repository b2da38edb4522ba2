package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/application/listado"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
	"github.com/tu-usuario/rrhh-admin/internal/validation"
)

// PermisoEstadoRequest aprobación o rechazo de una solicitud. El cliente envía
// el registro que tiene en pantalla; el cambio se aplica sobre esa copia antes
// de confirmar con el backend y se restaura si la confirmación falla.
type PermisoEstadoRequest struct {
	Estado  string         `json:"estado" validate:"required,oneof=aprobado rechazado pendiente"`
	Permiso entity.Permiso `json:"permiso"`
}

// PermisoHandler resolución de solicitudes de permiso.
type PermisoHandler struct {
	svc      *listado.ServicioPermisos
	val      *validation.Validador
	sesiones *sesion.Manager
}

// NewPermisoHandler construye el handler.
func NewPermisoHandler(svc *listado.ServicioPermisos, val *validation.Validador, sesiones *sesion.Manager) *PermisoHandler {
	return &PermisoHandler{svc: svc, val: val, sesiones: sesiones}
}

// CambiarEstado aprueba o rechaza la solicitud :id. Quien autoriza y quien
// modifica salen de los claims de la sesión, no del cuerpo.
func (h *PermisoHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_INVALIDO", Message: "identificador inválido"})
	}

	var req PermisoEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "cuerpo inválido"})
	}
	if err := h.val.Validar(&req); err != nil {
		return responder(c, h.sesiones, err)
	}

	claims := GetClaims(c)
	permiso := req.Permiso
	permiso.ID = int64(id)

	if err := h.svc.Resolver(c.Context(), GetToken(c), &permiso, req.Estado, claims.Username, claims.UserID); err != nil {
		return responder(c, h.sesiones, err)
	}

	return c.JSON(fiber.Map{
		"toast":   dto.ToastExito("Permiso " + req.Estado),
		"permiso": permiso,
	})
}

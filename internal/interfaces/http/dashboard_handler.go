package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/listado"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
)

// DashboardHandler tarjetas de resumen de la pantalla inicial.
type DashboardHandler struct {
	svc      *listado.ServicioEstadisticas
	sesiones *sesion.Manager
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc *listado.ServicioEstadisticas, sesiones *sesion.Manager) *DashboardHandler {
	return &DashboardHandler{svc: svc, sesiones: sesiones}
}

// Estadisticas calcula las cifras del dashboard.
func (h *DashboardHandler) Estadisticas(c *fiber.Ctx) error {
	est, err := h.svc.Calcular(c.Context(), GetToken(c))
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(est)
}

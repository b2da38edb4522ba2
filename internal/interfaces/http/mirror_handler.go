package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/restapi"
)

// MirrorHandler inspección de la base de datos espejo. La réplica corre del
// lado del backend; el panel consulta su estado y dispara la configuración.
type MirrorHandler struct {
	client   *restapi.Client
	sesiones *sesion.Manager
}

// NewMirrorHandler construye el handler.
func NewMirrorHandler(client *restapi.Client, sesiones *sesion.Manager) *MirrorHandler {
	return &MirrorHandler{client: client, sesiones: sesiones}
}

// Status estado general de la réplica.
func (h *MirrorHandler) Status(c *fiber.Ctx) error {
	status, err := h.client.MirrorStatus(c.Context(), GetToken(c))
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(status)
}

// Tables lista las tablas replicadas.
func (h *MirrorHandler) Tables(c *fiber.Ctx) error {
	tablas, err := h.client.MirrorTables(c.Context(), GetToken(c))
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(fiber.Map{"tables": tablas})
}

// Table muestra de filas de la tabla :nombre.
func (h *MirrorHandler) Table(c *fiber.Ctx) error {
	nombre := c.Params("nombre")
	if nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TABLA_REQUERIDA", Message: "nombre de tabla requerido"})
	}
	limite := c.QueryInt("limite", 50)

	preview, err := h.client.MirrorTable(c.Context(), GetToken(c), nombre, limite)
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(preview)
}

// Setup (re)crea el esquema espejo y sus triggers.
func (h *MirrorHandler) Setup(c *fiber.Ctx) error {
	resultado, err := h.client.MirrorSetup(c.Context(), GetToken(c))
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(resultado)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/restapi"
)

// LogsHandler visor del log transaccional. A diferencia de las pantallas de
// listado, los filtros y la paginación viajan al backend tal cual: la tabla
// de logs crece sin límite y no se trae completa.
type LogsHandler struct {
	client   *restapi.Client
	sesiones *sesion.Manager
}

// NewLogsHandler construye el handler.
func NewLogsHandler(client *restapi.Client, sesiones *sesion.Manager) *LogsHandler {
	return &LogsHandler{client: client, sesiones: sesiones}
}

// Listar consulta una página de logs con los filtros de la query.
func (h *LogsHandler) Listar(c *fiber.Ctx) error {
	pagina := c.QueryInt("pagina", 1)
	porPagina := c.QueryInt("por_pagina", 50)
	filtros := restapi.FiltrosLogs{
		Tabla:      c.Query("tabla"),
		Operacion:  c.Query("operacion"),
		FechaDesde: c.Query("fecha_desde"),
		FechaHasta: c.Query("fecha_hasta"),
	}

	logs, err := h.client.ListarLogs(c.Context(), GetToken(c), pagina, porPagina, filtros)
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(logs)
}

package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
)

// FiltrosLogs filtros del visor de logs. A diferencia del resto de pantallas,
// aquí el filtrado y la paginación los hace el backend; el panel solo traduce
// los filtros a query params.
type FiltrosLogs struct {
	Tabla      string
	Operacion  string
	FechaDesde string // YYYY-MM-DD
	FechaHasta string // YYYY-MM-DD
}

// PaginaLogs página de logs tal como la entrega el backend.
type PaginaLogs struct {
	Logs         []entity.LogTransaccional `json:"logs"`
	Total        int                       `json:"total"`
	TotalPaginas int                       `json:"total_pages"`
	HaySiguiente bool                      `json:"has_next"`
	HayAnterior  bool                      `json:"has_prev"`
}

// ListarLogs consulta una página del log transaccional.
func (c *Client) ListarLogs(ctx context.Context, token string, pagina, porPagina int, filtros FiltrosLogs) (*PaginaLogs, error) {
	if pagina < 1 {
		pagina = 1
	}
	if porPagina < 1 {
		porPagina = 50
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(pagina))
	q.Set("per_page", strconv.Itoa(porPagina))
	if filtros.Tabla != "" {
		q.Set("tabla", filtros.Tabla)
	}
	if filtros.Operacion != "" {
		q.Set("operacion", filtros.Operacion)
	}
	if filtros.FechaDesde != "" {
		q.Set("fecha_desde", filtros.FechaDesde)
	}
	if filtros.FechaHasta != "" {
		q.Set("fecha_hasta", filtros.FechaHasta)
	}

	var out PaginaLogs
	if err := c.do(ctx, http.MethodGet, RutaLogs, token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
)

// Endpoints del espejo de la base de datos. Se inspecciona y configura desde
// el panel; la réplica en sí corre del lado del backend.

// MirrorStatus consulta el estado de la réplica.
func (c *Client) MirrorStatus(ctx context.Context, token string) (*entity.MirrorStatus, error) {
	var out entity.MirrorStatus
	if err := c.do(ctx, http.MethodGet, "/api/mirror/status", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MirrorTables lista las tablas replicadas.
func (c *Client) MirrorTables(ctx context.Context, token string) ([]string, error) {
	var out struct {
		Tables []string `json:"tables"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/mirror/tables", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}

// MirrorTable trae una muestra de filas de una tabla del espejo.
func (c *Client) MirrorTable(ctx context.Context, token, tabla string, limite int) (*entity.MirrorPreview, error) {
	q := url.Values{}
	if limite > 0 {
		q.Set("limit", strconv.Itoa(limite))
	}
	var out entity.MirrorPreview
	if err := c.do(ctx, http.MethodGet, "/api/mirror/table/"+url.PathEscape(tabla), token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MirrorSetup (re)crea el esquema espejo y sus triggers.
func (c *Client) MirrorSetup(ctx context.Context, token string) (map[string]any, error) {
	var out map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/mirror/setup", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Package restapi es el cliente HTTP del backend de RRHH (colaborador
// externo). Aquí se traduce cada respuesta al vocabulario de errores del
// dominio: 401 es sesión expirada, cualquier otro no-2xx conserva el mensaje
// `error` del cuerpo para el toast, y un fallo de transporte es "sin conexión".
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/internal/domain/listview"
	"github.com/tu-usuario/rrhh-admin/pkg/logger"
)

// Rutas de colección del backend, una por entidad de dominio.
const (
	RutaEmpleados   = "/api/empleados/"
	RutaCargos      = "/api/cargos/"
	RutaUsuarios    = "/api/usuarios/"
	RutaHorarios    = "/api/horarios/"
	RutaHojasVida   = "/api/hojas-vida/"
	RutaAsistencias = "/api/asistencias/"
	RutaPermisos    = "/api/permisos/"
	RutaNominas     = "/api/nominas/"
	RutaRubros      = "/api/rubros/"
	RutaLogs        = "/api/logs/"
)

// Client cliente del backend REST.
// Usa net/http de la stdlib; no requiere librerías de terceros.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// New construye el cliente. El timeout es generoso porque el backend original
// no tenía ninguno; una petición colgada deja la pantalla "cargando", que es
// el comportamiento conocido del sistema.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// errorBackend cuerpo de error que devuelve el backend: {"error": "..."}.
type errorBackend struct {
	Error string `json:"error"`
}

// do ejecuta una petición y decodifica la respuesta en salida (si no es nil).
func (c *Client) do(ctx context.Context, metodo, ruta, token string, query url.Values, cuerpo, salida any) error {
	u := c.baseURL + ruta
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var lector io.Reader
	if cuerpo != nil {
		raw, err := json.Marshal(cuerpo)
		if err != nil {
			return fmt.Errorf("restapi: serializar cuerpo: %w", err)
		}
		lector = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, u, lector)
	if err != nil {
		return fmt.Errorf("restapi: construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("ruta", ruta).Msg("backend inalcanzable")
		return fmt.Errorf("%w: %v", domain.ErrSinConexion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrSesionExpirada
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBackend
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &eb)
		c.log.Warn().Int("estado", resp.StatusCode).Str("ruta", ruta).Msg("backend rechazó la petición")
		return &domain.ErrorBackend{Estado: resp.StatusCode, Mensaje: eb.Error}
	}

	if salida == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(salida); err != nil {
		return fmt.Errorf("restapi: decodificar respuesta de %s: %w", ruta, err)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD genérico sobre registros crudos
//
// Las pantallas de listado trabajan con los objetos JSON tal como llegan
// (igual que el frontend original); el motor de listview no asume esquema.
// ──────────────────────────────────────────────────────────────────────────────

// Listar trae la colección completa de una ruta como registros crudos.
func (c *Client) Listar(ctx context.Context, token, ruta string) ([]listview.Registro, error) {
	var registros []listview.Registro
	if err := c.do(ctx, http.MethodGet, ruta, token, nil, nil, &registros); err != nil {
		return nil, err
	}
	return registros, nil
}

// Crear da de alta un registro y devuelve la respuesta del backend.
func (c *Client) Crear(ctx context.Context, token, ruta string, cuerpo any) (listview.Registro, error) {
	var out listview.Registro
	if err := c.do(ctx, http.MethodPost, ruta, token, nil, cuerpo, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Actualizar modifica el registro id de la colección.
func (c *Client) Actualizar(ctx context.Context, token, ruta string, id int64, cuerpo any) (listview.Registro, error) {
	var out listview.Registro
	if err := c.do(ctx, http.MethodPut, rutaConID(ruta, id), token, nil, cuerpo, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Eliminar borra el registro id de la colección.
func (c *Client) Eliminar(ctx context.Context, token, ruta string, id int64) error {
	return c.do(ctx, http.MethodDelete, rutaConID(ruta, id), token, nil, nil, nil)
}

func rutaConID(ruta string, id int64) string {
	return fmt.Sprintf("%s%d", ruta, id)
}

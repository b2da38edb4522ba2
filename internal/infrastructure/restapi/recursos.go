package restapi

import (
	"context"
	"net/http"

	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
)

// ListarCargos trae los cargos tipados. Lo usa la resolución de acceso, que
// necesita leer permisos por nombre de cargo; las pantallas de listado usan
// la versión cruda Listar.
func (c *Client) ListarCargos(ctx context.Context, token string) ([]entity.Cargo, error) {
	var cargos []entity.Cargo
	if err := c.do(ctx, http.MethodGet, RutaCargos, token, nil, nil, &cargos); err != nil {
		return nil, err
	}
	return cargos, nil
}

// ListarEmpleados trae los empleados tipados, para las estadísticas del dashboard.
func (c *Client) ListarEmpleados(ctx context.Context, token string) ([]entity.Empleado, error) {
	var empleados []entity.Empleado
	if err := c.do(ctx, http.MethodGet, RutaEmpleados, token, nil, nil, &empleados); err != nil {
		return nil, err
	}
	return empleados, nil
}

// cambioEstadoPermiso cuerpo del PUT de aprobación/rechazo de un permiso.
// Los campos de auditoría viajan junto con el estado nuevo.
type cambioEstadoPermiso struct {
	Estado        string `json:"estado"`
	AutorizadoPor string `json:"autorizado_por"`
	ModificadoPor int64  `json:"modificado_por"`
}

// CambiarEstadoPermiso aprueba o rechaza una solicitud de permiso.
func (c *Client) CambiarEstadoPermiso(ctx context.Context, token string, id int64, estado, autorizadoPor string, modificadoPor int64) error {
	cuerpo := cambioEstadoPermiso{
		Estado:        estado,
		AutorizadoPor: autorizadoPor,
		ModificadoPor: modificadoPor,
	}
	return c.do(ctx, http.MethodPut, rutaConID(RutaPermisos, id), token, nil, cuerpo, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil del usuario autenticado
// ──────────────────────────────────────────────────────────────────────────────

// ActualizarPerfil cambia el nombre de usuario de la cuenta autenticada.
func (c *Client) ActualizarPerfil(ctx context.Context, token, username string) error {
	cuerpo := map[string]string{"username": username}
	return c.do(ctx, http.MethodPut, "/api/usuarios/me", token, nil, cuerpo, nil)
}

// CambiarPassword cambia la contraseña de la cuenta autenticada. El backend
// valida la contraseña actual; aquí solo se transporta.
func (c *Client) CambiarPassword(ctx context.Context, token, actual, nueva string) error {
	cuerpo := map[string]string{
		"current_password": actual,
		"new_password":     nueva,
	}
	return c.do(ctx, http.MethodPut, "/api/usuarios/me/password", token, nil, cuerpo, nil)
}

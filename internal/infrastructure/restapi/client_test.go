package restapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/restapi"
	"github.com/tu-usuario/rrhh-admin/pkg/logger"
)

func nuevoCliente(baseURL string) *restapi.Client {
	return restapi.New(baseURL, 5*time.Second, logger.New(logger.Config{Level: "error", Service: "test"}))
}

func TestClient_ListarEnviaElTokenComoBearer(t *testing.T) {
	var autorizacion, requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		autorizacion = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id_empleado": 1, "nombre": "Ana"}]`))
	}))
	defer srv.Close()

	registros, err := nuevoCliente(srv.URL).Listar(context.Background(), "tok123", restapi.RutaEmpleados)

	require.NoError(t, err)
	require.Len(t, registros, 1)
	assert.Equal(t, "Ana", registros[0]["nombre"])
	assert.Equal(t, "Bearer tok123", autorizacion)
	assert.NotEmpty(t, requestID, "cada petición lleva un X-Request-ID")
}

func TestClient_401SeTraduceASesionExpirada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).Listar(context.Background(), "caducado", restapi.RutaCargos)

	assert.ErrorIs(t, err, domain.ErrSesionExpirada)
}

func TestClient_ErrorDelBackendConservaElMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "La cédula ya está registrada"}`))
	}))
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).Crear(context.Background(), "tok", restapi.RutaEmpleados, map[string]string{"cedula": "1712345678"})

	var eb *domain.ErrorBackend
	require.ErrorAs(t, err, &eb)
	assert.Equal(t, http.StatusConflict, eb.Estado)
	assert.Equal(t, "La cédula ya está registrada", eb.Mensaje)
}

func TestClient_ErrorSinCuerpoJSONNoRompe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>pánico</html>`))
	}))
	defer srv.Close()

	_, err := nuevoCliente(srv.URL).Listar(context.Background(), "tok", restapi.RutaRubros)

	var eb *domain.ErrorBackend
	require.ErrorAs(t, err, &eb)
	assert.Equal(t, http.StatusInternalServerError, eb.Estado)
	assert.Empty(t, eb.Mensaje)
}

func TestClient_BackendApagadoEsSinConexion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // puerto cerrado a propósito

	_, err := nuevoCliente(srv.URL).Listar(context.Background(), "tok", restapi.RutaEmpleados)

	assert.ErrorIs(t, err, domain.ErrSinConexion)
}

func TestClient_EliminarApuntaAlRegistro(t *testing.T) {
	var metodo, ruta string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metodo, ruta = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := nuevoCliente(srv.URL).Eliminar(context.Background(), "tok", restapi.RutaCargos, 42)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, metodo)
	assert.Equal(t, "/api/cargos/42", ruta)
}

func TestClient_ListarCargosDecodificaPermisosAnidados(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// permisos llega como string JSON dentro del JSON, como lo emite el backend.
		_, _ = w.Write([]byte(`[{"id_cargo": 3, "nombre_cargo": "Analista", "permisos": "[\"dashboard\", \"empleados\"]"}]`))
	}))
	defer srv.Close()

	cargos, err := nuevoCliente(srv.URL).ListarCargos(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, cargos, 1)
	assert.Equal(t, "Analista", cargos[0].NombreCargo)
	assert.Equal(t, []string{"dashboard", "empleados"}, []string(cargos[0].Permisos))
}

func TestClient_ListarLogsTraduceFiltrosAQueryParams(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"logs": [{"id": 1, "tabla_afectada": "empleado", "operacion": "UPDATE"}],
			"total": 120, "total_pages": 3, "has_next": true, "has_prev": false}`))
	}))
	defer srv.Close()

	pagina, err := nuevoCliente(srv.URL).ListarLogs(context.Background(), "tok", 2, 50, restapi.FiltrosLogs{
		Tabla:      "empleado",
		Operacion:  "UPDATE",
		FechaDesde: "2025-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, query["page"])
	assert.Equal(t, []string{"50"}, query["per_page"])
	assert.Equal(t, []string{"empleado"}, query["tabla"])
	assert.Equal(t, []string{"UPDATE"}, query["operacion"])
	assert.Equal(t, []string{"2025-01-01"}, query["fecha_desde"])
	assert.NotContains(t, query, "fecha_hasta", "los filtros vacíos no viajan")

	assert.Equal(t, 120, pagina.Total)
	assert.Equal(t, 3, pagina.TotalPaginas)
	assert.True(t, pagina.HaySiguiente)
}

func TestClient_MirrorTableEscapaElNombre(t *testing.T) {
	var ruta string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ruta = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"table": "empleado", "columns": ["id", "nombre"], "rows": []}`))
	}))
	defer srv.Close()

	preview, err := nuevoCliente(srv.URL).MirrorTable(context.Background(), "tok", "empleado", 25)

	require.NoError(t, err)
	assert.Equal(t, "/api/mirror/table/empleado", ruta)
	assert.Equal(t, []string{"id", "nombre"}, preview.Columns)
}

func TestClient_CambiarEstadoPermisoEnviaAuditoria(t *testing.T) {
	var cuerpo []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cuerpo, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := nuevoCliente(srv.URL).CambiarEstadoPermiso(context.Background(), "tok", 9, "aprobado", "admin", 1)

	require.NoError(t, err)
	assert.JSONEq(t, `{"estado": "aprobado", "autorizado_por": "admin", "modificado_por": 1}`, string(cuerpo))
}

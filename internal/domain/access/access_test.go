package access_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rrhh-admin/internal/domain/access"
	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
)

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	claims := jwt.MapClaims{"username": "usuario1", "rol": rol, "user_id": 42}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto"))
	require.NoError(t, err)
	return tok
}

func fetchFijo(cargos ...entity.Cargo) access.FetchCargos {
	return func(context.Context) ([]entity.Cargo, error) { return cargos, nil }
}

func fetchQueFalla() access.FetchCargos {
	return func(context.Context) ([]entity.Cargo, error) {
		return nil, errors.New("backend caído")
	}
}

func TestResolver_SinToken(t *testing.T) {
	res := access.Resolver(context.Background(), "", fetchQueFalla())

	assert.True(t, res.SinSesion)
	assert.False(t, res.LimpiarToken)
	assert.Equal(t, []string{"dashboard"}, res.Permisos.Lista())
}

func TestResolver_TokenIndecodificable(t *testing.T) {
	res := access.Resolver(context.Background(), "invalid-token", fetchQueFalla())

	assert.True(t, res.SinSesion)
	assert.True(t, res.LimpiarToken, "el token corrupto debe borrarse del almacenamiento")
	assert.Equal(t, []string{"dashboard"}, res.Permisos.Lista())
}

func TestResolver_AdminRecibeCatalogoCompleto(t *testing.T) {
	// La detección de administrador es insensible a mayúsculas.
	for _, rol := range []string{"Administrador", "administrador", "admin", "ADMIN"} {
		t.Run(rol, func(t *testing.T) {
			res := access.Resolver(context.Background(), tokenConRol(t, rol), fetchQueFalla())

			assert.False(t, res.SinSesion)
			assert.Equal(t, access.Catalogo(), res.Permisos.Lista(),
				"un administrador no consulta cargos y recibe todo el catálogo")
		})
	}
}

func TestResolver_FiltraModulosDesconocidos(t *testing.T) {
	// Escenario literal del sistema original: el cargo "Analista" concede
	// dashboard, empleados y un módulo inexistente; este último se descarta.
	fetch := fetchFijo(entity.Cargo{
		NombreCargo: "Analista",
		Permisos:    entity.ListaPermisos{"dashboard", "empleados", "modulo-inexistente"},
	})

	res := access.Resolver(context.Background(), tokenConRol(t, "Analista"), fetch)

	assert.Equal(t, []string{"dashboard", "empleados"}, res.Permisos.Lista())
}

func TestResolver_BusquedaDeCargoEsExacta(t *testing.T) {
	// A diferencia de la detección de admin, el nombre del cargo se compara
	// exacto: "analista" no es "Analista". Asimetría heredada del original.
	fetch := fetchFijo(entity.Cargo{
		NombreCargo: "analista",
		Permisos:    entity.ListaPermisos{"dashboard", "empleados"},
	})

	res := access.Resolver(context.Background(), tokenConRol(t, "Analista"), fetch)

	assert.Equal(t, []string{"dashboard"}, res.Permisos.Lista())
}

func TestResolver_CargoSinPermisos(t *testing.T) {
	fetch := fetchFijo(entity.Cargo{NombreCargo: "Operador", Permisos: entity.ListaPermisos{}})

	res := access.Resolver(context.Background(), tokenConRol(t, "Operador"), fetch)

	assert.Equal(t, []string{"dashboard"}, res.Permisos.Lista())
}

func TestResolver_FetchFallaDegradaAMinimo(t *testing.T) {
	res := access.Resolver(context.Background(), tokenConRol(t, "Analista"), fetchQueFalla())

	assert.False(t, res.SinSesion, "el fallo de red no cierra la sesión")
	assert.Equal(t, []string{"dashboard"}, res.Permisos.Lista())
}

func TestResolver_DashboardSiemprePresente(t *testing.T) {
	// Aunque el cargo no liste "dashboard", el conjunto lo incluye.
	fetch := fetchFijo(entity.Cargo{
		NombreCargo: "Analista",
		Permisos:    entity.ListaPermisos{"empleados"},
	})

	res := access.Resolver(context.Background(), tokenConRol(t, "Analista"), fetch)

	assert.True(t, res.Permisos.Contiene("dashboard"))
	assert.True(t, res.Permisos.Contiene("empleados"))
}

func TestResolver_ExponeClaims(t *testing.T) {
	fetch := fetchFijo()
	res := access.Resolver(context.Background(), tokenConRol(t, "Analista"), fetch)

	require.NotNil(t, res.Claims)
	assert.Equal(t, "usuario1", res.Claims.Username)
	assert.Equal(t, int64(42), res.Claims.UserID)
}

func TestClasificarRol(t *testing.T) {
	assert.Equal(t, access.NivelAdmin, access.ClasificarRol("Administrador"))
	assert.Equal(t, access.NivelAdmin, access.ClasificarRol("admin"))
	assert.Equal(t, access.NivelSupervisor, access.ClasificarRol("Supervisor"))
	assert.Equal(t, access.NivelSupervisor, access.ClasificarRol("supervisor"))
	assert.Equal(t, access.NivelAutoservicio, access.ClasificarRol("Analista"))
	assert.Equal(t, access.NivelAutoservicio, access.ClasificarRol(""))
}

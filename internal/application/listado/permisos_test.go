package listado_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rrhh-admin/internal/application/listado"
	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
)

type fuentePermisos struct {
	err     error
	llamada struct {
		id            int64
		estado        string
		autorizadoPor string
		modificadoPor int64
	}
}

func (f *fuentePermisos) CambiarEstadoPermiso(_ context.Context, _ string, id int64, estado, autorizadoPor string, modificadoPor int64) error {
	f.llamada.id = id
	f.llamada.estado = estado
	f.llamada.autorizadoPor = autorizadoPor
	f.llamada.modificadoPor = modificadoPor
	return f.err
}

func TestResolver_AprobarActualizaYEnviaAuditoria(t *testing.T) {
	fuente := &fuentePermisos{}
	s := listado.NewServicioPermisos(fuente, logSilencioso())
	permiso := entity.Permiso{ID: 9, Estado: entity.PermisoPendiente}

	err := s.Resolver(context.Background(), "tok", &permiso, entity.PermisoAprobado, "admin", 1)

	require.NoError(t, err)
	assert.Equal(t, entity.PermisoAprobado, permiso.Estado)
	assert.Equal(t, "admin", permiso.AutorizadoPor)
	assert.Equal(t, int64(9), fuente.llamada.id)
	assert.Equal(t, int64(1), fuente.llamada.modificadoPor)
}

func TestResolver_FalloRemotoRestauraElPermiso(t *testing.T) {
	fuente := &fuentePermisos{err: domain.ErrSinConexion}
	s := listado.NewServicioPermisos(fuente, logSilencioso())
	permiso := entity.Permiso{ID: 9, Estado: entity.PermisoPendiente}

	err := s.Resolver(context.Background(), "tok", &permiso, entity.PermisoRechazado, "admin", 1)

	assert.ErrorIs(t, err, domain.ErrSinConexion)
	assert.Equal(t, entity.PermisoPendiente, permiso.Estado, "la reversión restaura el estado previo")
	assert.Empty(t, permiso.AutorizadoPor)
}

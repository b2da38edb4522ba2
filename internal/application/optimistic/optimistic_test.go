package optimistic_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rrhh-admin/internal/application/optimistic"
	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
)

func TestMutar_RemotoExitosoConservaElCambio(t *testing.T) {
	p := entity.Permiso{ID: 1, Estado: entity.PermisoPendiente}

	err := optimistic.Mutar(context.Background(), &p,
		func(p *entity.Permiso) { p.Estado = entity.PermisoAprobado },
		func(context.Context) error { return nil },
	)

	require.NoError(t, err)
	assert.Equal(t, entity.PermisoAprobado, p.Estado)
}

func TestMutar_RemotoFallidoRestauraLaInstantaneaCompleta(t *testing.T) {
	p := entity.Permiso{
		ID:            1,
		Estado:        entity.PermisoPendiente,
		AutorizadoPor: "",
	}

	err := optimistic.Mutar(context.Background(), &p,
		func(p *entity.Permiso) {
			// El cambio optimista toca más de un campo; la reversión debe
			// restaurar el registro entero, no solo el estado.
			p.Estado = entity.PermisoAprobado
			p.AutorizadoPor = "admin"
		},
		func(context.Context) error { return errors.New("backend rechazó") },
	)

	require.Error(t, err)
	assert.Equal(t, entity.PermisoPendiente, p.Estado)
	assert.Empty(t, p.AutorizadoPor)
}

func TestMutar_ElRemotoVeElEstadoYaAplicado(t *testing.T) {
	p := entity.Permiso{Estado: entity.PermisoPendiente}

	_ = optimistic.Mutar(context.Background(), &p,
		func(p *entity.Permiso) { p.Estado = entity.PermisoRechazado },
		func(context.Context) error {
			assert.Equal(t, entity.PermisoRechazado, p.Estado)
			return nil
		},
	)
}

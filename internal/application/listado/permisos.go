package listado

import (
	"context"

	"github.com/tu-usuario/rrhh-admin/internal/application/optimistic"
	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
	"github.com/tu-usuario/rrhh-admin/pkg/logger"
)

// FuentePermisos operación remota de aprobación/rechazo de permisos.
type FuentePermisos interface {
	CambiarEstadoPermiso(ctx context.Context, token string, id int64, estado, autorizadoPor string, modificadoPor int64) error
}

// ServicioPermisos resolución de solicitudes de permiso.
type ServicioPermisos struct {
	fuente FuentePermisos
	log    *logger.Logger
}

// NewServicioPermisos construye el servicio.
func NewServicioPermisos(fuente FuentePermisos, log *logger.Logger) *ServicioPermisos {
	return &ServicioPermisos{fuente: fuente, log: log}
}

// Resolver aprueba o rechaza una solicitud con actualización optimista: el
// registro en memoria cambia antes de confirmar con el backend y se restaura
// entero si la llamada falla. autorizadoPor y modificadoPor vienen de los
// claims del usuario que resuelve.
func (s *ServicioPermisos) Resolver(ctx context.Context, token string, permiso *entity.Permiso, estado, autorizadoPor string, modificadoPor int64) error {
	err := optimistic.Mutar(ctx, permiso,
		func(p *entity.Permiso) {
			p.Estado = estado
			p.AutorizadoPor = autorizadoPor
		},
		func(ctx context.Context) error {
			return s.fuente.CambiarEstadoPermiso(ctx, token, permiso.ID, estado, autorizadoPor, modificadoPor)
		},
	)
	if err != nil {
		s.log.Warn().Err(err).Int64("id", permiso.ID).Msg("no se pudo resolver el permiso; estado restaurado")
		return err
	}
	s.log.Info().Int64("id", permiso.ID).Str("estado", estado).Msg("permiso resuelto")
	return nil
}

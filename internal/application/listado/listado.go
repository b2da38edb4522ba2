// Package listado es el caso de uso de las pantallas de tabla del panel:
// trae la colección completa del backend, aplica el motor de listview y
// devuelve el estado de vista listo para pintar.
package listado

import (
	"context"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/domain/listview"
	"github.com/tu-usuario/rrhh-admin/pkg/logger"
)

// Fuente operaciones del backend que necesita una pantalla de listado.
// La implementa *restapi.Client.
type Fuente interface {
	Listar(ctx context.Context, token, ruta string) ([]listview.Registro, error)
	Crear(ctx context.Context, token, ruta string, cuerpo any) (listview.Registro, error)
	Actualizar(ctx context.Context, token, ruta string, id int64, cuerpo any) (listview.Registro, error)
	Eliminar(ctx context.Context, token, ruta string, id int64) error
}

// Servicio deriva el estado de vista de cualquier pantalla de listado.
type Servicio struct {
	fuente Fuente
	motor  listview.Motor
	log    *logger.Logger
}

// NewServicio construye el servicio. plegarAcentos activa la búsqueda
// insensible a tildes en todas las pantallas.
func NewServicio(fuente Fuente, plegarAcentos bool, log *logger.Logger) *Servicio {
	return &Servicio{
		fuente: fuente,
		motor:  listview.Motor{PlegarAcentos: plegarAcentos},
		log:    log,
	}
}

// Ver trae la colección y deriva la vista solicitada. Si la página pedida
// quedó fuera de rango (por ejemplo tras un borrado que encogió la colección),
// se ajusta a la última página válida y se recalcula; el índice efectivo viaja
// en la respuesta.
func (s *Servicio) Ver(ctx context.Context, token string, pantalla Pantalla, req dto.VistaRequest) (*dto.VistaResponse, error) {
	req.Normalizar()

	registros, err := s.fuente.Listar(ctx, token, pantalla.Ruta)
	if err != nil {
		return nil, err
	}

	var orden *listview.Orden
	if req.Campo != "" {
		orden = &listview.Orden{Campo: req.Campo, Direccion: listview.Direccion(req.Direccion)}
	}

	pagina := listview.Pagina{Indice: req.Pagina, Tamano: req.Tamano}
	res := s.motor.Aplicar(registros, req.Consulta, pantalla.CamposBusqueda, orden, pagina)

	if req.Pagina > res.TotalPaginas {
		pagina.Indice = res.TotalPaginas
		res = s.motor.Aplicar(registros, req.Consulta, pantalla.CamposBusqueda, orden, pagina)
	}

	return &dto.VistaResponse{
		Registros:    res.Visibles,
		Total:        res.TotalCoincidencias,
		TotalPaginas: res.TotalPaginas,
		Pagina:       pagina.Indice,
		Tamano:       pagina.Tamano,
	}, nil
}

// Crear da de alta un registro en la colección de la pantalla.
func (s *Servicio) Crear(ctx context.Context, token string, pantalla Pantalla, cuerpo any) (listview.Registro, error) {
	reg, err := s.fuente.Crear(ctx, token, pantalla.Ruta, cuerpo)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("pantalla", pantalla.Nombre).Msg("registro creado")
	return reg, nil
}

// Actualizar modifica un registro de la colección de la pantalla.
func (s *Servicio) Actualizar(ctx context.Context, token string, pantalla Pantalla, id int64, cuerpo any) (listview.Registro, error) {
	reg, err := s.fuente.Actualizar(ctx, token, pantalla.Ruta, id, cuerpo)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("pantalla", pantalla.Nombre).Int64("id", id).Msg("registro actualizado")
	return reg, nil
}

// Eliminar borra un registro de la colección de la pantalla.
func (s *Servicio) Eliminar(ctx context.Context, token string, pantalla Pantalla, id int64) error {
	if err := s.fuente.Eliminar(ctx, token, pantalla.Ruta, id); err != nil {
		return err
	}
	s.log.Info().Str("pantalla", pantalla.Nombre).Int64("id", id).Msg("registro eliminado")
	return nil
}

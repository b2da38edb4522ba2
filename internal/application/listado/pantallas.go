package listado

import (
	"github.com/tu-usuario/rrhh-admin/internal/domain/access"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/restapi"
)

// Pantalla configuración de una pantalla de listado: su módulo de acceso, la
// colección del backend y los campos sobre los que busca la caja de filtro.
type Pantalla struct {
	Nombre         string
	Modulo         string
	Ruta           string
	CamposBusqueda []string
}

// Pantallas catálogo de pantallas de listado del panel, indexado por nombre.
// Logs y mirror no están aquí: tienen flujos propios (paginación del lado del
// servidor y endpoints de inspección, respectivamente).
func Pantallas() map[string]Pantalla {
	lista := []Pantalla{
		{
			Nombre:         "empleados",
			Modulo:         access.ModuloEmpleados,
			Ruta:           restapi.RutaEmpleados,
			CamposBusqueda: []string{"nombres", "apellidos", "cedula", "estado"},
		},
		{
			Nombre:         "cargos",
			Modulo:         access.ModuloCargos,
			Ruta:           restapi.RutaCargos,
			CamposBusqueda: []string{"nombre_cargo"},
		},
		{
			Nombre:         "usuarios",
			Modulo:         access.ModuloUsuarios,
			Ruta:           restapi.RutaUsuarios,
			CamposBusqueda: []string{"username", "rol"},
		},
		{
			Nombre:         "horarios",
			Modulo:         access.ModuloHorarios,
			Ruta:           restapi.RutaHorarios,
			CamposBusqueda: []string{"dia_laborables", "turno", "hora_entrada", "hora_salida"},
		},
		{
			Nombre:         "hojas-vida",
			Modulo:         access.ModuloHojasVida,
			Ruta:           restapi.RutaHojasVida,
			CamposBusqueda: []string{"tipo", "nombre_documento", "institucion"},
		},
		{
			Nombre:         "asistencias",
			Modulo:         access.ModuloAsistencias,
			Ruta:           restapi.RutaAsistencias,
			CamposBusqueda: []string{"fecha", "hora_entrada", "hora_salida"},
		},
		{
			Nombre:         "permisos",
			Modulo:         access.ModuloPermisos,
			Ruta:           restapi.RutaPermisos,
			CamposBusqueda: []string{"tipo", "descripcion", "estado", "autorizado_por"},
		},
		{
			Nombre:         "nominas",
			Modulo:         access.ModuloNomina,
			Ruta:           restapi.RutaNominas,
			CamposBusqueda: []string{"fecha_inicio", "fecha_fin", "estado"},
		},
		{
			Nombre:         "rubros",
			Modulo:         access.ModuloRubros,
			Ruta:           restapi.RutaRubros,
			CamposBusqueda: []string{"codigo", "descripcion", "tipo"},
		},
	}

	out := make(map[string]Pantalla, len(lista))
	for _, p := range lista {
		out[p.Nombre] = p
	}
	return out
}

package entity

// Estados posibles de un permiso/vacación.
const (
	PermisoPendiente = "pendiente"
	PermisoAprobado  = "aprobado"
	PermisoRechazado = "rechazado"
)

// Permiso solicitud de permiso, vacaciones o licencia de un empleado.
type Permiso struct {
	ID         int64 `json:"id_permiso"`
	IDEmpleado int64 `json:"id_empleado"`

	Tipo          string `json:"tipo"` // permiso, vacaciones, licencias
	Descripcion   string `json:"descripcion,omitempty"`
	FechaInicio   string `json:"fecha_inicio"`
	FechaFin      string `json:"fecha_fin"`
	Estado        string `json:"estado"`
	AutorizadoPor string `json:"autorizado_por,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

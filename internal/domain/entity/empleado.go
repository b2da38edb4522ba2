package entity

// Estados posibles de un empleado.
const (
	EmpleadoActivo     = "Activo"
	EmpleadoInactivo   = "Inactivo"
	EmpleadoSuspendido = "Suspendido"
)

// Empleado registro de la tabla empleados. Las fechas viajan como texto ISO
// (YYYY-MM-DD); el panel no las reinterpreta, solo las valida y las muestra.
type Empleado struct {
	ID        int64  `json:"id"`
	IDUsuario *int64 `json:"id_usuario,omitempty"`
	IDCargo   int64  `json:"id_cargo"`

	Nombres         string `json:"nombres"`
	Apellidos       string `json:"apellidos"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty"`
	Cedula          string `json:"cedula"`
	Estado          string `json:"estado"` // Activo, Inactivo, Suspendido
	FechaIngreso    string `json:"fecha_ingreso,omitempty"`
	FechaEgreso     string `json:"fecha_egreso,omitempty"`

	TipoCuentaBancaria    string `json:"tipo_cuenta_bancaria,omitempty"`
	NumeroCuentaBancaria  string `json:"numero_cuenta_bancaria,omitempty"`
	ModalidadFondoReserva string `json:"modalidad_fondo_reserva,omitempty"` // Mensual / Acumulado
	ModalidadDecimos      string `json:"modalidad_decimos,omitempty"`       // Mensual / Acumulado

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

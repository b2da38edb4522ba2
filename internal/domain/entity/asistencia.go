package entity

// Asistencia marcación diaria de entrada/salida de un empleado.
type Asistencia struct {
	ID         int64 `json:"id_asistencia"`
	IDEmpleado int64 `json:"id_empleado"`

	Fecha       string  `json:"fecha"`
	HoraEntrada string  `json:"hora_entrada"`
	HoraSalida  string  `json:"hora_salida,omitempty"`
	HorasExtra  float64 `json:"horas_extra,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

package entity

// Horario jornada laboral asignada a un empleado.
type Horario struct {
	ID         int64 `json:"id_horario"`
	IDEmpleado int64 `json:"id_empleado"`

	DiaLaborables   string `json:"dia_laborables,omitempty"`
	FechaInicio     string `json:"fecha_inicio,omitempty"`
	HoraEntrada     string `json:"hora_entrada,omitempty"`
	HoraSalida      string `json:"hora_salida,omitempty"`
	DescansoMinutos *int   `json:"descanso_minutos,omitempty"`
	Turno           string `json:"turno,omitempty"` // matutino, vespertino, nocturno
	InicioVigencia  string `json:"inicio_vigencia,omitempty"`
	FinVigencia     string `json:"fin_vigencia,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

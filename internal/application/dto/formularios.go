package dto

// Formularios de los modales de cada pantalla. Los montos viajan como texto y
// se validan con el mismo patrón del original (hasta dos decimales) antes de
// emitir cualquier petición al backend; las fechas, como YYYY-MM-DD.

// EmpleadoForm alta/edición de empleado.
type EmpleadoForm struct {
	Nombres         string `json:"nombres" validate:"required"`
	Apellidos       string `json:"apellidos" validate:"required"`
	Cedula          string `json:"cedula" validate:"required,len=10,numeric"`
	IDCargo         int64  `json:"id_cargo" validate:"required"`
	Estado          string `json:"estado" validate:"required,oneof=Activo Inactivo Suspendido"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty" validate:"omitempty,fechaiso"`
	FechaIngreso    string `json:"fecha_ingreso" validate:"required,fechaiso"`
	FechaEgreso     string `json:"fecha_egreso,omitempty" validate:"omitempty,fechaiso,despuesde=FechaIngreso"`

	TipoCuentaBancaria    string `json:"tipo_cuenta_bancaria,omitempty"`
	NumeroCuentaBancaria  string `json:"numero_cuenta_bancaria,omitempty" validate:"omitempty,numeric"`
	ModalidadFondoReserva string `json:"modalidad_fondo_reserva,omitempty" validate:"omitempty,oneof=Mensual Acumulado"`
	ModalidadDecimos      string `json:"modalidad_decimos,omitempty" validate:"omitempty,oneof=Mensual Acumulado"`
}

// CargoForm alta/edición de cargo, incluida su lista de módulos permitidos.
type CargoForm struct {
	NombreCargo string   `json:"nombre_cargo" validate:"required"`
	SueldoBase  string   `json:"sueldo_base" validate:"required,monto2"`
	Permisos    []string `json:"permisos,omitempty"`
}

// UsuarioForm alta/edición de cuenta de acceso.
type UsuarioForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password,omitempty" validate:"omitempty,min=4"`
	Rol      string `json:"rol" validate:"required"`
}

// HorarioForm alta/edición de horario.
type HorarioForm struct {
	IDEmpleado      int64  `json:"id_empleado" validate:"required"`
	DiaLaborables   string `json:"dia_laborables,omitempty"`
	HoraEntrada     string `json:"hora_entrada" validate:"required"`
	HoraSalida      string `json:"hora_salida" validate:"required"`
	DescansoMinutos *int   `json:"descanso_minutos,omitempty" validate:"omitempty,min=0"`
	Turno           string `json:"turno,omitempty" validate:"omitempty,oneof=matutino vespertino nocturno"`
	InicioVigencia  string `json:"inicio_vigencia,omitempty" validate:"omitempty,fechaiso"`
	FinVigencia     string `json:"fin_vigencia,omitempty" validate:"omitempty,fechaiso,despuesde=InicioVigencia"`
}

// HojaVidaForm alta/edición de documento de hoja de vida.
type HojaVidaForm struct {
	IDEmpleado        int64  `json:"id_empleado" validate:"required"`
	Tipo              string `json:"tipo" validate:"required"`
	NombreDocumento   string `json:"nombre_documento" validate:"required"`
	Institucion       string `json:"institucion,omitempty"`
	FechaInicio       string `json:"fecha_inicio,omitempty" validate:"omitempty,fechaiso"`
	FechaFinalizacion string `json:"fecha_finalizacion,omitempty" validate:"omitempty,fechaiso,despuesde=FechaInicio"`
	RutaArchivoURL    string `json:"ruta_archivo_url,omitempty"`
}

// AsistenciaForm registro de marcación.
type AsistenciaForm struct {
	IDEmpleado  int64  `json:"id_empleado" validate:"required"`
	Fecha       string `json:"fecha" validate:"required,fechaiso"`
	HoraEntrada string `json:"hora_entrada" validate:"required"`
	HoraSalida  string `json:"hora_salida,omitempty"`
	HorasExtra  string `json:"horas_extra,omitempty" validate:"omitempty,monto2"`
}

// PermisoForm solicitud de permiso/vacaciones.
type PermisoForm struct {
	IDEmpleado  int64  `json:"id_empleado" validate:"required"`
	Tipo        string `json:"tipo" validate:"required,oneof=permiso vacaciones licencias"`
	Motivo      string `json:"motivo" validate:"required"`
	FechaInicio string `json:"fecha_inicio" validate:"required,fechaiso"`
	FechaFin    string `json:"fecha_fin" validate:"required,fechaiso,despuesde=FechaInicio"`
}

// NominaForm alta/edición de nómina.
type NominaForm struct {
	IDEmpleado  int64  `json:"id_empleado" validate:"required"`
	FechaInicio string `json:"fecha_inicio" validate:"required,fechaiso"`
	FechaFin    string `json:"fecha_fin" validate:"required,fechaiso,despuesde=FechaInicio"`
	Total       string `json:"total,omitempty" validate:"omitempty,monto2"`
	Estado      string `json:"estado,omitempty" validate:"omitempty,oneof=pendiente pagada anulada"`
}

// RubroForm línea de nómina.
type RubroForm struct {
	IDNomina    int64  `json:"id_nomina" validate:"required"`
	Codigo      string `json:"codigo,omitempty"`
	Descripcion string `json:"descripcion" validate:"required"`
	Tipo        string `json:"tipo" validate:"required,oneof=devengo deduccion"`
	Monto       string `json:"monto" validate:"required,monto2"`
}

package entity

// HojaVida documento de la hoja de vida de un empleado (certificados, cursos, títulos).
type HojaVida struct {
	ID         int64 `json:"id_hoja_vida"`
	IDEmpleado int64 `json:"id_empleado"`

	Tipo              string `json:"tipo,omitempty"` // Certificado, Curso, Maestría, etc.
	NombreDocumento   string `json:"nombre_documento,omitempty"`
	Institucion       string `json:"institucion,omitempty"`
	FechaInicio       string `json:"fecha_inicio,omitempty"`
	FechaFinalizacion string `json:"fecha_finalizacion,omitempty"`
	RutaArchivoURL    string `json:"ruta_archivo_url,omitempty"`

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

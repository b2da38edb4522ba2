package entity

// LogTransaccional entrada de auditoría generada por el backend en cada mutación.
type LogTransaccional struct {
	ID              int64  `json:"id"`
	TablaAfectada   string `json:"tabla_afectada"`
	Operacion       string `json:"operacion"` // INSERT, UPDATE, DELETE
	IDRegistro      int64  `json:"id_registro"`
	Usuario         string `json:"usuario"`
	FechaHora       string `json:"fecha_hora"`
	DatosAnteriores string `json:"datos_anteriores,omitempty"`
	DatosNuevos     string `json:"datos_nuevos,omitempty"`
}

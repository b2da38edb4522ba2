package entity

import "github.com/shopspring/decimal"

// Nomina liquidación de pago de un empleado para un período.
type Nomina struct {
	ID         int64 `json:"id_nomina"`
	IDEmpleado int64 `json:"id_empleado"`

	FechaInicio string          `json:"fecha_inicio"`
	FechaFin    string          `json:"fecha_fin"`
	Total       decimal.Decimal `json:"total"`
	Estado      string          `json:"estado"` // pendiente, pagada, anulada

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

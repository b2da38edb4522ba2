package entity

import "github.com/shopspring/decimal"

// Tipos de rubro de nómina.
const (
	RubroDevengo   = "devengo"
	RubroDeduccion = "deduccion"
)

// Rubro línea de una nómina: un devengo suma al total, una deducción resta.
type Rubro struct {
	ID       int64 `json:"id_rubro"`
	IDNomina int64 `json:"id_nomina"`

	Codigo      string          `json:"codigo,omitempty"`
	Descripcion string          `json:"descripcion,omitempty"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

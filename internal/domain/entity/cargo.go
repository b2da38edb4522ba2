package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Cargo posición/puesto de trabajo. Es además la fuente de verdad de los
// permisos por módulo: el rol del token se compara contra NombreCargo.
type Cargo struct {
	ID          int64           `json:"id_cargo"`
	NombreCargo string          `json:"nombre_cargo"`
	SueldoBase  decimal.Decimal `json:"sueldo_base"`
	Permisos    ListaPermisos   `json:"permisos"`

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
	CreadoPor          *int64 `json:"creado_por,omitempty"`
	ModificadoPor      *int64 `json:"modificado_por,omitempty"`
}

// ListaPermisos identificadores de módulo concedidos a un cargo.
//
// El backend a veces entrega el campo como arreglo JSON y a veces como un
// string con el arreglo serializado dentro (así llega desde la tabla cargos).
// Se aceptan ambas formas; cualquier contenido indescifrable queda como lista
// vacía, que el resolutor de acceso trata como "solo dashboard".
type ListaPermisos []string

func (l *ListaPermisos) UnmarshalJSON(data []byte) error {
	var directo []string
	if err := json.Unmarshal(data, &directo); err == nil {
		*l = directo
		return nil
	}

	var anidado string
	if err := json.Unmarshal(data, &anidado); err == nil {
		var lista []string
		if err := json.Unmarshal([]byte(anidado), &lista); err == nil {
			*l = lista
			return nil
		}
	}

	*l = nil
	return nil
}

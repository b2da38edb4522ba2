package listado

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
	"github.com/tu-usuario/rrhh-admin/pkg/logger"
)

// Estadisticas tarjetas del dashboard.
type Estadisticas struct {
	TotalEmpleados     int             `json:"total_empleados"`
	EmpleadosActivos   int             `json:"empleados_activos"`
	EmpleadosInactivos int             `json:"empleados_inactivos"`
	TotalCargos        int             `json:"total_cargos"`
	PromedioSueldo     decimal.Decimal `json:"promedio_sueldo"`
}

// FuenteEstadisticas colecciones tipadas que necesita el dashboard.
type FuenteEstadisticas interface {
	ListarEmpleados(ctx context.Context, token string) ([]entity.Empleado, error)
	ListarCargos(ctx context.Context, token string) ([]entity.Cargo, error)
}

// ServicioEstadisticas agrega las cifras del dashboard.
type ServicioEstadisticas struct {
	fuente FuenteEstadisticas
	log    *logger.Logger
}

// NewServicioEstadisticas construye el servicio.
func NewServicioEstadisticas(fuente FuenteEstadisticas, log *logger.Logger) *ServicioEstadisticas {
	return &ServicioEstadisticas{fuente: fuente, log: log}
}

// Calcular deriva las tarjetas del dashboard a partir de empleados y cargos.
// El promedio de sueldo se calcula sobre los empleados que tienen cargo
// asignado, usando el sueldo base del cargo.
func (s *ServicioEstadisticas) Calcular(ctx context.Context, token string) (*Estadisticas, error) {
	empleados, err := s.fuente.ListarEmpleados(ctx, token)
	if err != nil {
		return nil, err
	}
	cargos, err := s.fuente.ListarCargos(ctx, token)
	if err != nil {
		return nil, err
	}

	sueldoPorCargo := make(map[int64]decimal.Decimal, len(cargos))
	for _, c := range cargos {
		sueldoPorCargo[c.ID] = c.SueldoBase
	}

	est := &Estadisticas{
		TotalEmpleados: len(empleados),
		TotalCargos:    len(cargos),
	}

	suma := decimal.Zero
	conCargo := 0
	for _, e := range empleados {
		switch e.Estado {
		case entity.EmpleadoActivo:
			est.EmpleadosActivos++
		case entity.EmpleadoInactivo:
			est.EmpleadosInactivos++
		}
		if sueldo, ok := sueldoPorCargo[e.IDCargo]; ok {
			suma = suma.Add(sueldo)
			conCargo++
		}
	}
	if conCargo > 0 {
		est.PromedioSueldo = suma.Div(decimal.NewFromInt(int64(conCargo))).Round(2)
	}

	return est, nil
}

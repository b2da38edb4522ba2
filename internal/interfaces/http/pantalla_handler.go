package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/application/listado"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/internal/validation"
)

// formularios fábrica de formulario por pantalla, para parsear y validar el
// cuerpo de las mutaciones con las reglas de cada modal.
var formularios = map[string]func() any{
	"empleados":   func() any { return &dto.EmpleadoForm{} },
	"cargos":      func() any { return &dto.CargoForm{} },
	"usuarios":    func() any { return &dto.UsuarioForm{} },
	"horarios":    func() any { return &dto.HorarioForm{} },
	"hojas-vida":  func() any { return &dto.HojaVidaForm{} },
	"asistencias": func() any { return &dto.AsistenciaForm{} },
	"permisos":    func() any { return &dto.PermisoForm{} },
	"nominas":     func() any { return &dto.NominaForm{} },
	"rubros":      func() any { return &dto.RubroForm{} },
}

// PantallaHandler handler genérico de una pantalla de listado. Todas las
// pantallas comparten el mismo ciclo: derivar la vista, crear, actualizar y
// eliminar; solo cambian la colección, los campos de búsqueda y el formulario.
type PantallaHandler struct {
	svc      *listado.Servicio
	val      *validation.Validador
	sesiones *sesion.Manager
	pantalla listado.Pantalla
}

// NewPantallaHandler construye el handler para una pantalla concreta.
func NewPantallaHandler(svc *listado.Servicio, val *validation.Validador, sesiones *sesion.Manager, pantalla listado.Pantalla) *PantallaHandler {
	return &PantallaHandler{svc: svc, val: val, sesiones: sesiones, pantalla: pantalla}
}

// Ver deriva el estado de vista: filtro, orden y página según la query.
func (h *PantallaHandler) Ver(c *fiber.Ctx) error {
	var req dto.VistaRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUERY_INVALIDA", Message: "parámetros de listado inválidos"})
	}

	vista, err := h.svc.Ver(c.Context(), GetToken(c), h.pantalla, req)
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(vista)
}

// Crear valida el formulario de la pantalla y da de alta el registro.
// Un formulario inválido nunca llega al backend.
func (h *PantallaHandler) Crear(c *fiber.Ctx) error {
	formulario, err := h.parsearFormulario(c)
	if err != nil {
		return responder(c, h.sesiones, err)
	}

	registro, err := h.svc.Crear(c.Context(), GetToken(c), h.pantalla, formulario)
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MutacionResponse{
		Toast:    dto.ToastExito("Registro creado correctamente"),
		Registro: registro,
	})
}

// Actualizar valida el formulario y modifica el registro :id.
func (h *PantallaHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_INVALIDO", Message: "identificador inválido"})
	}

	formulario, err := h.parsearFormulario(c)
	if err != nil {
		return responder(c, h.sesiones, err)
	}

	registro, err := h.svc.Actualizar(c.Context(), GetToken(c), h.pantalla, int64(id), formulario)
	if err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(dto.MutacionResponse{
		Toast:    dto.ToastExito("Registro actualizado correctamente"),
		Registro: registro,
	})
}

// Eliminar borra el registro :id. Exige confirmar=true en la query: el
// diálogo de confirmación del original se traslada aquí como contrato.
func (h *PantallaHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ID_INVALIDO", Message: "identificador inválido"})
	}
	if c.Query("confirmar") != "true" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "CONFIRMACION_REQUERIDA",
			Message: "el borrado requiere confirmar=true",
		})
	}

	if err := h.svc.Eliminar(c.Context(), GetToken(c), h.pantalla, int64(id)); err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(dto.MutacionResponse{Toast: dto.ToastExito("Registro eliminado correctamente")})
}

// parsearFormulario parsea el cuerpo al formulario de la pantalla y lo valida.
// Pantallas sin formulario registrado aceptan el cuerpo tal cual.
func (h *PantallaHandler) parsearFormulario(c *fiber.Ctx) (any, error) {
	fabrica, ok := formularios[h.pantalla.Nombre]
	if !ok {
		var crudo map[string]any
		if err := c.BodyParser(&crudo); err != nil {
			return nil, &domain.ErrorValidacion{Campos: domain.ErroresCampo{"_": "cuerpo inválido"}}
		}
		return crudo, nil
	}

	formulario := fabrica()
	if err := c.BodyParser(formulario); err != nil {
		return nil, &domain.ErrorValidacion{Campos: domain.ErroresCampo{"_": "cuerpo inválido"}}
	}
	if err := h.val.Validar(formulario); err != nil {
		return nil, err
	}
	return formulario, nil
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/validation"
)

// SesionHandler ciclo de vida de la sesión del panel: guardar un token ya
// emitido por el backend, consultar el estado y cerrar sesión. El login en sí
// (usuario y contraseña) ocurre contra el backend, fuera del panel.
type SesionHandler struct {
	sesiones *sesion.Manager
	cargos   fuenteCargos
	val      *validation.Validador
}

// NewSesionHandler construye el handler.
func NewSesionHandler(sesiones *sesion.Manager, cargos fuenteCargos, val *validation.Validador) *SesionHandler {
	return &SesionHandler{sesiones: sesiones, cargos: cargos, val: val}
}

// Iniciar guarda el token recibido y devuelve el estado de sesión resultante.
func (h *SesionHandler) Iniciar(c *fiber.Ctx) error {
	var req dto.SesionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "cuerpo inválido"})
	}
	if err := h.val.Validar(&req); err != nil {
		return responder(c, h.sesiones, err)
	}

	if _, err := h.sesiones.Iniciar(req.Token); err != nil {
		return responder(c, h.sesiones, err)
	}
	return h.estado(c, fiber.StatusCreated)
}

// Estado devuelve los claims, el estado de expiración y los módulos visibles.
func (h *SesionHandler) Estado(c *fiber.Ctx) error {
	return h.estado(c, fiber.StatusOK)
}

func (h *SesionHandler) estado(c *fiber.Ctx, codigo int) error {
	resultado, err := resolverModulos(c, h.sesiones, h.cargos)
	if err != nil {
		return responder(c, h.sesiones, err)
	}

	claims := resultado.Claims
	return c.Status(codigo).JSON(dto.SesionResponse{
		Username: claims.Username,
		Rol:      claims.Rol,
		UserID:   claims.UserID,
		Estado:   claims.Estado(time.Now()),
		Modulos:  resultado.Permisos.Lista(),
	})
}

// Cerrar invalida la sesión. Idempotente: cerrar sin sesión no es error.
func (h *SesionHandler) Cerrar(c *fiber.Ctx) error {
	h.sesiones.Invalidar("logout")
	return c.JSON(dto.MutacionResponse{Toast: dto.ToastExito("Sesión cerrada")})
}

// Preferencias devuelve el blob de categorías plegadas del menú.
func (h *SesionHandler) Preferencias(c *fiber.Ctx) error {
	return c.JSON(dto.PreferenciasSidebar{CategoriasPlegadas: h.sesiones.Preferencias()})
}

// GuardarPreferencias reemplaza el blob de preferencias.
func (h *SesionHandler) GuardarPreferencias(c *fiber.Ctx) error {
	var req dto.PreferenciasSidebar
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BODY_INVALIDO", Message: "cuerpo inválido"})
	}
	if err := h.sesiones.GuardarPreferencias(req.CategoriasPlegadas); err != nil {
		return responder(c, h.sesiones, err)
	}
	return c.JSON(dto.PreferenciasSidebar{CategoriasPlegadas: h.sesiones.Preferencias()})
}

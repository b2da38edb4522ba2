package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/domain"
)

// responder traduce el vocabulario de errores del dominio a respuestas HTTP
// del panel. Es el único punto donde se decide qué ve el cliente ante cada
// familia de fallo:
//
//   - sesión expirada → 401 con Redirect, y el token almacenado se limpia
//   - validación local → 400 con los mensajes por campo
//   - rechazo del backend → mismo estado, con el mensaje del backend para el toast
//   - sin conexión → 503 con mensaje genérico
func responder(c *fiber.Ctx, sesiones *sesion.Manager, err error) error {
	if errors.Is(err, domain.ErrSesionExpirada) {
		sesiones.Invalidar("sesión expirada")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:     "SESION_EXPIRADA",
			Message:  "La sesión expiró, vuelva a iniciar sesión",
			Redirect: true,
		})
	}

	var ev *domain.ErrorValidacion
	if errors.As(err, &ev) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDACION",
			Message: "Revise los campos marcados",
			Campos:  ev.Campos,
		})
	}

	var eb *domain.ErrorBackend
	if errors.As(err, &eb) {
		mensaje := eb.Mensaje
		if mensaje == "" {
			mensaje = "El servidor rechazó la operación"
		}
		return c.Status(eb.Estado).JSON(dto.ErrorResponse{Code: "BACKEND", Message: mensaje})
	}

	if errors.Is(err, domain.ErrSinConexion) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "SIN_CONEXION",
			Message: "No se pudo contactar al servidor",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNO",
		Message: err.Error(),
	})
}

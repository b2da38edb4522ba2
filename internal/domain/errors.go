package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrSesionExpirada: el backend respondió 401 o el token no decodifica.
	// El llamador limpia el token almacenado y redirige al login; sin reintento.
	ErrSesionExpirada = errors.New("sesión expirada")
	// ErrSinConexion: la petición al backend nunca obtuvo respuesta.
	ErrSinConexion = errors.New("no se pudo conectar con el servidor")
	// ErrValidacion: los datos del formulario no pasan las validaciones locales;
	// la petición al backend nunca se emite.
	ErrValidacion = errors.New("datos inválidos")
)

// ErrorBackend respuesta no-2xx (distinta de 401) del backend REST.
// Conserva el mensaje `error` del cuerpo JSON cuando existe, para mostrarlo
// en el toast; si no, el handler usa un texto genérico.
type ErrorBackend struct {
	Estado  int    // código HTTP devuelto
	Mensaje string // campo "error" del cuerpo, puede ser vacío
}

func (e *ErrorBackend) Error() string {
	if e.Mensaje != "" {
		return fmt.Sprintf("backend respondió %d: %s", e.Estado, e.Mensaje)
	}
	return fmt.Sprintf("backend respondió %d", e.Estado)
}

// ErroresCampo errores de validación por campo, para pintarlos en línea en el formulario.
type ErroresCampo map[string]string

// ErrorValidacion agrupa los errores de campo de un formulario.
// Envuelve ErrValidacion para poder detectarlo con errors.Is.
type ErrorValidacion struct {
	Campos ErroresCampo
}

func (e *ErrorValidacion) Error() string {
	return fmt.Sprintf("datos inválidos en %d campo(s)", len(e.Campos))
}

func (e *ErrorValidacion) Unwrap() error { return ErrValidacion }

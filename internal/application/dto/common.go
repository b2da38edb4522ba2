package dto

import "github.com/tu-usuario/rrhh-admin/internal/domain/listview"

// ToastDuracionMs duración fija de los toasts en el panel original.
const ToastDuracionMs = 5000

// ErrorResponse cuerpo de error HTTP del panel.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Redirect indica al cliente que debe volver a la pantalla de login
	// (sesión expirada o token corrupto).
	Redirect bool `json:"redirect,omitempty"`
	// Campos errores de validación por campo, para pintarlos en línea.
	Campos map[string]string `json:"campos,omitempty"`
}

// Toast notificación transitoria; el cliente la descarta pasada la duración.
type Toast struct {
	Mensaje    string `json:"mensaje"`
	Tipo       string `json:"tipo"` // success | error
	DuracionMs int    `json:"duracion_ms"`
}

// ToastExito construye un toast de éxito con la duración estándar.
func ToastExito(mensaje string) Toast {
	return Toast{Mensaje: mensaje, Tipo: "success", DuracionMs: ToastDuracionMs}
}

// ToastError construye un toast de error con la duración estándar.
func ToastError(mensaje string) Toast {
	return Toast{Mensaje: mensaje, Tipo: "error", DuracionMs: ToastDuracionMs}
}

// VistaRequest parámetros de listado de una pantalla.
type VistaRequest struct {
	Consulta  string `query:"q"`
	Campo     string `query:"orden"`
	Direccion string `query:"dir"`    // asc | desc
	Pagina    int    `query:"pagina"` // 1-based
	Tamano    int    `query:"tamano"`
}

// Normalizar aplica los valores por defecto del panel.
func (r *VistaRequest) Normalizar() {
	if r.Pagina < 1 {
		r.Pagina = 1
	}
	if r.Tamano < 1 {
		r.Tamano = 10
	}
	if r.Direccion != string(listview.Descendente) {
		r.Direccion = string(listview.Ascendente)
	}
}

// VistaResponse estado de vista de una pantalla de listado: la porción
// visible más los metadatos para pintar la paginación.
type VistaResponse struct {
	Registros    []listview.Registro `json:"registros"`
	Total        int                 `json:"total"`
	TotalPaginas int                 `json:"total_paginas"`
	// Pagina índice efectivo tras el ajuste: si un borrado encogió la
	// colección, puede ser menor al solicitado.
	Pagina int `json:"pagina"`
	Tamano int `json:"tamano"`
}

// MutacionResponse resultado de crear/actualizar/eliminar.
type MutacionResponse struct {
	Toast    Toast             `json:"toast"`
	Registro listview.Registro `json:"registro,omitempty"`
}

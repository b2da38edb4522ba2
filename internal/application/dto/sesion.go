package dto

import "github.com/tu-usuario/rrhh-admin/pkg/token"

// SesionRequest guarda un token ya emitido por el backend (el login en sí
// queda fuera del panel).
type SesionRequest struct {
	Token string `json:"token" validate:"required"`
}

// SesionResponse estado de la sesión actual y módulos visibles.
type SesionResponse struct {
	Username string             `json:"username"`
	Rol      string             `json:"rol"`
	UserID   int64              `json:"user_id"`
	Estado   token.EstadoSesion `json:"estado"`
	Modulos  []string           `json:"modulos"`
}

// PerfilRequest cambio de nombre de usuario del perfil propio.
type PerfilRequest struct {
	Username string `json:"username" validate:"required"`
}

// PasswordRequest cambio de contraseña del perfil propio. Las reglas son las
// del modal original: los tres campos presentes, confirmación igual a la
// nueva y largo mínimo de 4.
type PasswordRequest struct {
	Actual       string `json:"password_actual" validate:"required"`
	Nueva        string `json:"password_nueva" validate:"required,min=4"`
	Confirmacion string `json:"password_confirmacion" validate:"required,eqfield=Nueva"`
}

// PreferenciasSidebar blob de preferencias de navegación persistido del lado
// del cliente: qué categorías del menú están plegadas.
type PreferenciasSidebar struct {
	CategoriasPlegadas map[string]bool `json:"categorias_plegadas"`
}

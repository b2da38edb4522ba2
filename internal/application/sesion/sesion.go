// Package sesion gestiona el único recurso mutable compartido del panel: el
// token de sesión. Centraliza el "limpiar + redirigir" que en el sistema
// original estaba repartido en accesos ad hoc al localStorage de cada pantalla.
package sesion

import (
	"time"

	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/pkg/logger"
	"github.com/tu-usuario/rrhh-admin/pkg/token"
)

// CategoriaPersonal categoría del menú que se fuerza abierta en el dashboard.
const CategoriaPersonal = "gestion-personal"

// Almacen contrato mínimo que necesita el manager; lo implementa
// *localstore.Store. La interfaz permite un stub en tests.
type Almacen interface {
	Token() string
	GuardarToken(string) error
	LimpiarToken() error
	Preferencias() map[string]bool
	GuardarPreferencias(map[string]bool) error
}

// Manager ciclo de vida de la sesión y preferencias de navegación.
type Manager struct {
	store Almacen
	log   *logger.Logger
}

// NewManager construye el manager.
func NewManager(store Almacen, log *logger.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Token devuelve el token vigente ("" si no hay sesión).
func (m *Manager) Token() string {
	return m.store.Token()
}

// Iniciar guarda un token ya emitido por el backend. Un token que no
// decodifica se rechaza sin almacenarlo.
func (m *Manager) Iniciar(tokenString string) (*token.Claims, error) {
	claims, err := token.Decode(tokenString)
	if err != nil {
		return nil, domain.ErrSesionExpirada
	}
	if err := m.store.GuardarToken(tokenString); err != nil {
		return nil, err
	}
	m.log.Info().Str("username", claims.Username).Str("rol", claims.Rol).Msg("sesión iniciada")
	return claims, nil
}

// Invalidar limpia el token en un solo paso. Se invoca en logout explícito,
// ante un 401 del backend o ante un token indecodificable; el llamador debe
// redirigir al login inmediatamente después para que ninguna pantalla siga
// operando con credenciales viejas.
func (m *Manager) Invalidar(motivo string) {
	if err := m.store.LimpiarToken(); err != nil {
		m.log.Error().Err(err).Msg("no se pudo limpiar el token almacenado")
	}
	m.log.Info().Str("motivo", motivo).Msg("sesión invalidada")
}

// Claims decodifica el token vigente. Si no hay token o está corrupto
// devuelve ErrSesionExpirada; en el segundo caso además lo limpia.
func (m *Manager) Claims() (*token.Claims, error) {
	t := m.store.Token()
	if t == "" {
		return nil, domain.ErrSesionExpirada
	}
	claims, err := token.Decode(t)
	if err != nil {
		m.Invalidar("token corrupto")
		return nil, domain.ErrSesionExpirada
	}
	return claims, nil
}

// Estado estado presentable de la sesión (activa / por expirar).
func (m *Manager) Estado(ahora time.Time) (token.EstadoSesion, error) {
	claims, err := m.Claims()
	if err != nil {
		return token.EstadoSesion{}, err
	}
	return claims.Estado(ahora), nil
}

// Preferencias blob de categorías plegadas del menú.
func (m *Manager) Preferencias() map[string]bool {
	return m.store.Preferencias()
}

// GuardarPreferencias reemplaza el blob de preferencias.
func (m *Manager) GuardarPreferencias(prefs map[string]bool) error {
	return m.store.GuardarPreferencias(prefs)
}

// CategoriaAbierta regla de presentación del menú: en la ruta /dashboard la
// categoría de gestión de personal se muestra desplegada aunque la
// preferencia guardada diga lo contrario. Es una regla de presentación, no
// de permisos: no re-ejecuta la resolución de acceso.
func (m *Manager) CategoriaAbierta(ruta, categoria string) bool {
	if ruta == "/dashboard" && categoria == CategoriaPersonal {
		return true
	}
	return !m.store.Preferencias()[categoria]
}

// Package localstore persiste el estado local del panel en un archivo JSON:
// el token de sesión y las preferencias de navegación. Es el equivalente del
// localStorage del navegador en el sistema original — sobrevive reinicios y
// no se comparte con nadie más.
package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Claves fijas del archivo, como las del localStorage original.
type datos struct {
	Token        string          `json:"token,omitempty"`
	Preferencias map[string]bool `json:"sidebar_categorias,omitempty"`
}

// Store almacén local respaldado por archivo. Seguro para uso concurrente.
type Store struct {
	ruta string

	mu sync.Mutex
	d  datos
}

// Abrir carga el almacén desde ruta; si el archivo no existe arranca vacío.
// Un archivo corrupto también arranca vacío: perder las preferencias es
// preferible a impedir el arranque del panel.
func Abrir(ruta string) (*Store, error) {
	s := &Store{ruta: ruta}

	raw, err := os.ReadFile(ruta)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.d); err != nil {
		s.d = datos{}
	}
	return s, nil
}

// Token devuelve el token almacenado ("" si no hay sesión).
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Token
}

// GuardarToken persiste el token de sesión.
func (s *Store) GuardarToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Token = token
	return s.persistir()
}

// LimpiarToken borra el token (logout, 401 o token corrupto).
func (s *Store) LimpiarToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Token = ""
	return s.persistir()
}

// Preferencias devuelve una copia del blob de categorías plegadas del menú.
func (s *Store) Preferencias() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.d.Preferencias))
	for k, v := range s.d.Preferencias {
		out[k] = v
	}
	return out
}

// GuardarPreferencias reemplaza el blob de preferencias completo.
func (s *Store) GuardarPreferencias(prefs map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Preferencias = prefs
	return s.persistir()
}

// persistir escribe a un temporal y renombra, para no dejar el archivo a
// medias si el proceso muere durante la escritura. Llamar con el lock tomado.
func (s *Store) persistir() error {
	raw, err := json.MarshalIndent(s.d, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.ruta + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.ruta), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.ruta)
}

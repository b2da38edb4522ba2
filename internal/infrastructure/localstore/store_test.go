package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/localstore"
)

func TestStore_TokenSobreviveReapertura(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "panel-store.json")

	s, err := localstore.Abrir(ruta)
	require.NoError(t, err)
	require.NoError(t, s.GuardarToken("abc.def.ghi"))

	reabierto, err := localstore.Abrir(ruta)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", reabierto.Token())
}

func TestStore_LimpiarToken(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "panel-store.json")
	s, err := localstore.Abrir(ruta)
	require.NoError(t, err)

	require.NoError(t, s.GuardarToken("abc.def.ghi"))
	require.NoError(t, s.LimpiarToken())

	assert.Empty(t, s.Token())

	reabierto, err := localstore.Abrir(ruta)
	require.NoError(t, err)
	assert.Empty(t, reabierto.Token())
}

func TestStore_PreferenciasDevuelveCopia(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "panel-store.json")
	s, err := localstore.Abrir(ruta)
	require.NoError(t, err)

	require.NoError(t, s.GuardarPreferencias(map[string]bool{"gestion-personal": true}))

	copia := s.Preferencias()
	copia["gestion-personal"] = false

	assert.True(t, s.Preferencias()["gestion-personal"], "mutar la copia no debe tocar el almacén")
}

func TestStore_ArchivoCorruptoArrancaVacio(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "panel-store.json")
	require.NoError(t, os.WriteFile(ruta, []byte("{esto no es json"), 0o600))

	s, err := localstore.Abrir(ruta)
	require.NoError(t, err)
	assert.Empty(t, s.Token())
}

func TestStore_ArchivoInexistente(t *testing.T) {
	s, err := localstore.Abrir(filepath.Join(t.TempDir(), "no-existe.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Token())
	assert.Empty(t, s.Preferencias())
}

package token_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rrhh-admin/pkg/token"
)

// buildToken genera un token firmado HS256 con los claims del backend de RRHH.
func buildToken(t *testing.T, username, rol string, userID int64, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"rol":      rol,
		"user_id":  userID,
	}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)
	return tok
}

func TestDecode_TokenValido(t *testing.T) {
	tok := buildToken(t, "mgarcia", "Analista", 7, time.Now().Add(time.Hour))

	claims, err := token.Decode(tok)
	require.NoError(t, err)

	assert.Equal(t, "mgarcia", claims.Username)
	assert.Equal(t, "Analista", claims.Rol)
	assert.Equal(t, int64(7), claims.UserID)
}

// El decodificador original solo exigía el segmento del payload: un token de
// dos segmentos (sin firma) también debe decodificar.
func TestDecode_TokenSinFirma(t *testing.T) {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"username":"ana","rol":"Operador","user_id":3}`))
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))

	claims, err := token.Decode(header + "." + payload)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "Operador", claims.Rol)
}

func TestDecode_TokenMalformado(t *testing.T) {
	casos := []struct {
		nombre string
		token  string
	}{
		{"sin puntos", "invalid-token"},
		{"vacío", ""},
		{"base64 corrupto", "abc.%%%%.def"},
		{"payload no JSON", "abc." + base64.RawURLEncoding.EncodeToString([]byte("no-json")) + ".def"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := token.Decode(c.token)
			assert.ErrorIs(t, err, token.ErrTokenInvalido)
		})
	}
}

func TestEstado_PorExpirar(t *testing.T) {
	ahora := time.Now()
	tok := buildToken(t, "u", "Analista", 1, ahora.Add(3*time.Minute))
	claims, err := token.Decode(tok)
	require.NoError(t, err)

	estado := claims.Estado(ahora)
	assert.Equal(t, "warn", estado.Variante)
	assert.Contains(t, estado.Etiqueta, "Sesión por expirar")
}

func TestEstado_Activa(t *testing.T) {
	ahora := time.Now()
	tok := buildToken(t, "u", "Analista", 1, ahora.Add(30*time.Minute))
	claims, err := token.Decode(tok)
	require.NoError(t, err)

	estado := claims.Estado(ahora)
	assert.Equal(t, "ok", estado.Variante)
	assert.Contains(t, estado.Etiqueta, "Sesión activa")
}

func TestEstado_SinExp(t *testing.T) {
	tok := buildToken(t, "u", "Analista", 1, time.Time{})
	claims, err := token.Decode(tok)
	require.NoError(t, err)

	estado := claims.Estado(time.Now())
	assert.Equal(t, token.EstadoSesion{Etiqueta: "Sesión activa", Variante: "ok"}, estado)
}

func TestSegundosRestantes_Expirado(t *testing.T) {
	ahora := time.Now()
	tok := buildToken(t, "u", "Analista", 1, ahora.Add(-time.Minute))
	claims, err := token.Decode(tok)
	require.NoError(t, err)

	restante, ok := claims.SegundosRestantes(ahora)
	assert.True(t, ok)
	assert.Equal(t, int64(0), restante)
}

package token

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalido indica que el token no pudo decodificarse (base64 corrupto,
// JSON inválido o menos de dos segmentos). El llamador debe tratarlo como
// ausencia de sesión: limpiar el token almacenado y redirigir al login.
var ErrTokenInvalido = errors.New("token inválido o malformado")

// Claims payload mínimo que el panel espera dentro del token emitido por el backend.
// El panel NO verifica la firma: solo decodifica el segmento central, igual que
// hacía el frontend original. La autorización real la aplica el backend.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Rol      string `json:"rol"`
	UserID   int64  `json:"user_id"`
}

// Decode extrae los claims del segmento central del token, sin verificar firma.
// Acepta tokens de dos segmentos (sin firma) por fidelidad con el decodificador
// original, que solo exigía la parte del payload.
func Decode(tokenString string) (*Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) < 2 {
		return nil, ErrTokenInvalido
	}
	if len(parts) == 2 {
		// ParseUnverified exige tres segmentos; una firma vacía no se verifica.
		tokenString += "."
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalido, err)
	}
	return claims, nil
}

// SegundosRestantes devuelve los segundos que quedan de sesión según el claim exp.
// El segundo valor es false si el token no trae exp.
func (c *Claims) SegundosRestantes(ahora time.Time) (int64, bool) {
	if c.ExpiresAt == nil {
		return 0, false
	}
	restante := int64(c.ExpiresAt.Time.Sub(ahora).Seconds())
	if restante < 0 {
		restante = 0
	}
	return restante, true
}

// EstadoSesion estado presentable de la sesión en el encabezado del panel.
type EstadoSesion struct {
	Etiqueta string `json:"etiqueta"`
	Variante string `json:"variante"` // ok | warn
}

// Estado calcula el estado de la sesión: "por expirar" cuando quedan 5 minutos o menos.
func (c *Claims) Estado(ahora time.Time) EstadoSesion {
	restante, ok := c.SegundosRestantes(ahora)
	if !ok {
		return EstadoSesion{Etiqueta: "Sesión activa", Variante: "ok"}
	}
	minutos := int64(math.Ceil(float64(restante) / 60))
	if restante <= 5*60 {
		return EstadoSesion{
			Etiqueta: fmt.Sprintf("Sesión por expirar (%d min)", minutos),
			Variante: "warn",
		}
	}
	return EstadoSesion{
		Etiqueta: fmt.Sprintf("Sesión activa (%d min)", minutos),
		Variante: "ok",
	}
}

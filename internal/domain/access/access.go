// Package access resuelve qué módulos del panel puede ver el usuario firmado.
// La resolución es orientativa (oculta enlaces y botones): la autorización
// real la aplica el backend en cada petición, por eso todo fallo degrada a
// acceso mínimo y nunca a acceso total.
package access

import (
	"context"
	"strings"

	"github.com/tu-usuario/rrhh-admin/internal/domain/entity"
	"github.com/tu-usuario/rrhh-admin/pkg/token"
)

// Catálogo fijo de módulos reconocidos. Cualquier identificador fuera de esta
// lista que venga en un cargo se descarta en silencio.
const (
	ModuloDashboard   = "dashboard"
	ModuloCargos      = "cargos"
	ModuloUsuarios    = "usuarios"
	ModuloEmpleados   = "empleados"
	ModuloHojasVida   = "hojas-vida"
	ModuloHorarios    = "horarios"
	ModuloNomina      = "nomina"
	ModuloRubros      = "rubros"
	ModuloLogs        = "logs"
	ModuloPermisos    = "permisos"
	ModuloAsistencias = "asistencias"
	ModuloMirror      = "mirror"
)

// Catalogo devuelve todos los módulos reconocidos, en el orden del menú.
func Catalogo() []string {
	return []string{
		ModuloDashboard,
		ModuloEmpleados,
		ModuloHojasVida,
		ModuloAsistencias,
		ModuloHorarios,
		ModuloPermisos,
		ModuloNomina,
		ModuloRubros,
		ModuloCargos,
		ModuloUsuarios,
		ModuloLogs,
		ModuloMirror,
	}
}

// Conjunto conjunto de módulos visibles. Siempre contiene "dashboard".
type Conjunto map[string]bool

// NuevoConjunto construye un conjunto a partir de identificadores arbitrarios:
// filtra contra el catálogo y garantiza "dashboard".
func NuevoConjunto(modulos ...string) Conjunto {
	reconocidos := make(map[string]bool, len(modulos))
	for _, m := range Catalogo() {
		reconocidos[m] = false
	}
	c := Conjunto{ModuloDashboard: true}
	for _, m := range modulos {
		if _, ok := reconocidos[m]; ok {
			c[m] = true
		}
	}
	return c
}

// ConjuntoCompleto todos los módulos del catálogo (roles administradores).
func ConjuntoCompleto() Conjunto {
	return NuevoConjunto(Catalogo()...)
}

// Contiene informa si el módulo está concedido.
func (c Conjunto) Contiene(modulo string) bool { return c[modulo] }

// Lista devuelve los módulos concedidos en el orden del catálogo.
func (c Conjunto) Lista() []string {
	out := make([]string, 0, len(c))
	for _, m := range Catalogo() {
		if c[m] {
			out = append(out, m)
		}
	}
	return out
}

// FetchCargos colaborador inyectado que trae el catálogo de cargos del
// backend. En producción es el cliente REST; en tests, un stub.
type FetchCargos func(ctx context.Context) ([]entity.Cargo, error)

// Resultado salida de la resolución de acceso.
type Resultado struct {
	Permisos Conjunto
	// SinSesion: no hay token utilizable; el llamador redirige al login.
	SinSesion bool
	// LimpiarToken: el token almacenado está corrupto y debe borrarse
	// además de redirigir.
	LimpiarToken bool
	// Claims del token cuando decodificó bien.
	Claims *token.Claims
}

// EsAdmin detección de rol administrador. Deliberadamente insensible a
// mayúsculas, a diferencia de la búsqueda de cargo, que es exacta porque la
// tabla cargos del backend es la fuente de verdad de los nombres. La
// asimetría viene del sistema original y se conserva tal cual.
func EsAdmin(rol string) bool {
	switch strings.ToLower(rol) {
	case "administrador", "admin":
		return true
	}
	return false
}

// Resolver calcula el conjunto de módulos visibles para el token dado.
//
// Sin token → solo dashboard y señal de redirección. Token indecodificable →
// lo mismo, más la señal de limpiar el token. Rol administrador → catálogo
// completo sin consultar cargos. Cualquier otro rol se busca por nombre
// exacto en los cargos del backend; si no aparece, no tiene permisos, o el
// fetch falla, queda el acceso mínimo {dashboard}. Nunca se propaga el error.
func Resolver(ctx context.Context, tokenString string, fetch FetchCargos) Resultado {
	if tokenString == "" {
		return Resultado{Permisos: NuevoConjunto(), SinSesion: true}
	}

	claims, err := token.Decode(tokenString)
	if err != nil {
		return Resultado{Permisos: NuevoConjunto(), SinSesion: true, LimpiarToken: true}
	}

	if EsAdmin(claims.Rol) {
		return Resultado{Permisos: ConjuntoCompleto(), Claims: claims}
	}

	cargos, err := fetch(ctx)
	if err != nil {
		return Resultado{Permisos: NuevoConjunto(), Claims: claims}
	}

	for _, cargo := range cargos {
		if cargo.NombreCargo != claims.Rol {
			continue
		}
		if len(cargo.Permisos) == 0 {
			break
		}
		return Resultado{Permisos: NuevoConjunto(cargo.Permisos...), Claims: claims}
	}

	return Resultado{Permisos: NuevoConjunto(), Claims: claims}
}

// Nivel capas de capacidad que antes se re-derivaban con comparaciones de
// strings repartidas por cada pantalla.
type Nivel int

// Niveles de capacidad.
const (
	// NivelAutoservicio solo ve y gestiona lo propio.
	NivelAutoservicio Nivel = iota
	// NivelSupervisor gestiona registros de otros empleados.
	NivelSupervisor
	// NivelAdmin acceso total.
	NivelAdmin
)

// ClasificarRol clasifica el rol del token en un nivel de capacidad.
func ClasificarRol(rol string) Nivel {
	if EsAdmin(rol) {
		return NivelAdmin
	}
	if strings.EqualFold(rol, "supervisor") {
		return NivelSupervisor
	}
	return NivelAutoservicio
}

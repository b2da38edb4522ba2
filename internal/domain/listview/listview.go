// Package listview implementa el motor de listados del panel: búsqueda por
// substring, orden por un campo y paginación. Es una función pura de sus
// argumentos: no hace I/O, no guarda estado y no modifica la colección
// recibida, de modo que cada tecleo o clic puede re-derivar la vista completa.
package listview

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Registro una fila genérica: mapa campo → valor tal como llega del backend
// (string, número, fecha en texto o null). El motor no asume esquema.
type Registro map[string]any

// Direccion sentido del orden.
type Direccion string

// Valores de Direccion.
const (
	Ascendente  Direccion = "asc"
	Descendente Direccion = "desc"
)

// Orden campo activo de ordenamiento. Ningún listado usa orden multi-campo.
type Orden struct {
	Campo     string
	Direccion Direccion
}

// Pagina ventana solicitada. Indice es 1-based.
type Pagina struct {
	Indice int
	Tamano int
}

// Resultado la porción visible más los contadores que el llamador necesita
// para pintar la paginación y, si corresponde, ajustar su índice de página.
type Resultado struct {
	Visibles           []Registro `json:"visibles"`
	TotalCoincidencias int        `json:"total_coincidencias"`
	TotalPaginas       int        `json:"total_paginas"`
}

// Motor configura el comportamiento del filtro. El valor cero reproduce el
// comportamiento original: substring en minúsculas, sensible a acentos.
type Motor struct {
	// PlegarAcentos hace que "lopez" encuentre "López". Apagado por defecto.
	PlegarAcentos bool
}

// Aplicar versión de conveniencia con el motor por defecto.
func Aplicar(registros []Registro, consulta string, campos []string, orden *Orden, pagina Pagina) Resultado {
	return Motor{}.Aplicar(registros, consulta, campos, orden, pagina)
}

// Aplicar filtra, ordena y pagina.
//
//   - Filtro: un registro pasa si algún campo de `campos` contiene `consulta`
//     (ambos en minúsculas). Consulta vacía coincide con todo. Un campo ausente
//     cuenta como cadena vacía.
//   - Orden: estable respecto al orden de entrada para claves iguales; la
//     dirección descendente invierte el comparador, no la salida, para no
//     romper esa estabilidad en los empates.
//   - Paginación: TotalPaginas = max(1, ceil(coincidencias/tamaño)). Si el
//     índice excede TotalPaginas la porción visible queda vacía: el motor no
//     ajusta el índice, solo informa TotalPaginas para que el llamador lo haga.
func (m Motor) Aplicar(registros []Registro, consulta string, campos []string, orden *Orden, pagina Pagina) Resultado {
	filtrados := m.filtrar(registros, consulta, campos)

	if orden != nil && orden.Campo != "" {
		ordenar(filtrados, *orden)
	}

	tamano := pagina.Tamano
	if tamano < 1 {
		tamano = 1
	}
	total := len(filtrados)
	totalPaginas := (total + tamano - 1) / tamano
	if totalPaginas < 1 {
		totalPaginas = 1
	}

	var visibles []Registro
	inicio := (pagina.Indice - 1) * tamano
	if pagina.Indice >= 1 && inicio < total {
		fin := inicio + tamano
		if fin > total {
			fin = total
		}
		visibles = filtrados[inicio:fin]
	}

	return Resultado{
		Visibles:           visibles,
		TotalCoincidencias: total,
		TotalPaginas:       totalPaginas,
	}
}

func (m Motor) filtrar(registros []Registro, consulta string, campos []string) []Registro {
	// Copia siempre: el orden posterior no debe tocar la colección del llamador.
	out := make([]Registro, 0, len(registros))
	if consulta == "" {
		return append(out, registros...)
	}

	aguja := m.normalizar(consulta)
	for _, r := range registros {
		for _, campo := range campos {
			if strings.Contains(m.normalizar(cadena(r[campo])), aguja) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func (m Motor) normalizar(s string) string {
	s = strings.ToLower(s)
	if m.PlegarAcentos {
		s = plegarAcentos(s)
	}
	return s
}

var plegador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func plegarAcentos(s string) string {
	plano, _, err := transform.String(plegador, s)
	if err != nil {
		return s
	}
	return plano
}

func ordenar(registros []Registro, orden Orden) {
	sort.SliceStable(registros, func(i, j int) bool {
		c := comparar(registros[i][orden.Campo], registros[j][orden.Campo])
		if orden.Direccion == Descendente {
			return c > 0
		}
		return c < 0
	})
}

// comparar ordena numéricamente si ambos valores se interpretan como número;
// si no, compara lexicográficamente en minúsculas. null/ausente ordena como
// cadena vacía (queda primero en ascendente).
func comparar(a, b any) int {
	sa, sb := cadena(a), cadena(b)
	na, okA := comoNumero(sa)
	nb, okB := comoNumero(sb)
	if okA && okB {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(sa), strings.ToLower(sb))
}

func comoNumero(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return n, err == nil
}

// cadena forma textual de un valor de registro, imitando la coerción del
// frontend original: null → "", números sin ceros sobrantes.
func cadena(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		if s, ok := v.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
}

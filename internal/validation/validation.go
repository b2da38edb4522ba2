// Package validation concentra las validaciones de formulario que cada
// pantalla del sistema original repetía a mano. Si un formulario no pasa,
// la petición al backend nunca se emite.
package validation

import (
	"reflect"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tu-usuario/rrhh-admin/internal/domain"
)

// patrón del original para montos: entero con hasta dos decimales.
var reMonto = regexp.MustCompile(`^\d+(?:\.\d{1,2})?$`)

// Validador valida formularios DTO contra sus tags.
type Validador struct {
	v *validator.Validate
}

// Nuevo construye el validador con las reglas propias del panel:
//
//	monto2    — texto numérico con hasta dos decimales ("1200", "1200.50")
//	fechaiso  — fecha YYYY-MM-DD
//	despuesde — fecha igual o posterior a la de otro campo del formulario
func Nuevo() *Validador {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores de registro solo ocurren con tags vacíos o funciones nil.
	_ = v.RegisterValidation("monto2", func(fl validator.FieldLevel) bool {
		return reMonto.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("fechaiso", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	// despuesde=<Campo>: la fecha debe ser igual o posterior a la del otro
	// campo. Sobre fechas ISO el orden lexicográfico es el cronológico (el
	// gtefield de la librería compara largos cuando los campos son strings,
	// por eso no sirve aquí).
	_ = v.RegisterValidation("despuesde", func(fl validator.FieldLevel) bool {
		otro := reflect.Indirect(fl.Parent()).FieldByName(fl.Param())
		if !otro.IsValid() || otro.Kind() != reflect.String {
			return false
		}
		desde := otro.String()
		if desde == "" {
			return true
		}
		return fl.Field().String() >= desde
	})

	return &Validador{v: v}
}

// Validar devuelve nil o un *domain.ErrorValidacion con un mensaje por campo.
func (val *Validador) Validar(formulario any) error {
	err := val.v.Struct(formulario)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &domain.ErrorValidacion{Campos: domain.ErroresCampo{"_": err.Error()}}
	}

	campos := domain.ErroresCampo{}
	for _, fe := range errs {
		campos[fe.Field()] = mensaje(fe)
	}
	return &domain.ErrorValidacion{Campos: campos}
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "el campo es requerido"
	case "monto2":
		return "debe ser un número con hasta dos decimales"
	case "fechaiso":
		return "debe ser una fecha YYYY-MM-DD"
	case "despuesde":
		return "debe ser posterior o igual a la fecha de inicio"
	case "eqfield":
		return "la confirmación no coincide"
	case "len":
		return "largo incorrecto (se esperan " + fe.Param() + " caracteres)"
	case "numeric":
		return "solo se admiten dígitos"
	case "min":
		return "muy corto (mínimo " + fe.Param() + ")"
	case "oneof":
		return "valor fuera de la lista permitida: " + fe.Param()
	default:
		return "valor inválido"
	}
}

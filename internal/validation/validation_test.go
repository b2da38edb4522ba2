package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/rrhh-admin/internal/application/dto"
	"github.com/tu-usuario/rrhh-admin/internal/domain"
	"github.com/tu-usuario/rrhh-admin/internal/validation"
)

func permisoValido() dto.PermisoForm {
	return dto.PermisoForm{
		IDEmpleado:  3,
		Tipo:        "vacaciones",
		Motivo:      "vacaciones anuales",
		FechaInicio: "2026-03-01",
		FechaFin:    "2026-03-15",
	}
}

func TestValidar_PermisoValido(t *testing.T) {
	val := validation.Nuevo()
	assert.NoError(t, val.Validar(permisoValido()))
}

func TestValidar_FechasDesordenadas(t *testing.T) {
	val := validation.Nuevo()
	form := permisoValido()
	form.FechaFin = "2026-02-01"

	err := val.Validar(form)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidacion)

	var ev *domain.ErrorValidacion
	require.True(t, errors.As(err, &ev))
	assert.Contains(t, ev.Campos, "FechaFin")
}

func TestValidar_CamposRequeridos(t *testing.T) {
	val := validation.Nuevo()

	err := val.Validar(dto.PermisoForm{})
	require.Error(t, err)

	var ev *domain.ErrorValidacion
	require.True(t, errors.As(err, &ev))
	for _, campo := range []string{"IDEmpleado", "Tipo", "Motivo", "FechaInicio", "FechaFin"} {
		assert.Contains(t, ev.Campos, campo)
	}
}

func TestValidar_MontoConDosDecimales(t *testing.T) {
	val := validation.Nuevo()
	base := dto.RubroForm{IDNomina: 1, Descripcion: "sueldo", Tipo: "devengo"}

	validos := []string{"0", "1200", "1200.5", "1200.50"}
	for _, m := range validos {
		form := base
		form.Monto = m
		assert.NoError(t, val.Validar(form), "monto %q debe ser válido", m)
	}

	invalidos := []string{"", "abc", "12.345", "-5", "1,200", "12."}
	for _, m := range invalidos {
		form := base
		form.Monto = m
		assert.Error(t, val.Validar(form), "monto %q debe rechazarse", m)
	}
}

func TestValidar_CedulaLargoFijo(t *testing.T) {
	val := validation.Nuevo()
	form := dto.EmpleadoForm{
		Nombres:      "Ana",
		Apellidos:    "López",
		Cedula:       "091234567", // 9 dígitos
		IDCargo:      1,
		Estado:       "Activo",
		FechaIngreso: "2025-01-15",
	}

	err := val.Validar(form)
	require.Error(t, err)

	var ev *domain.ErrorValidacion
	require.True(t, errors.As(err, &ev))
	assert.Contains(t, ev.Campos, "Cedula")

	form.Cedula = "0912345678"
	assert.NoError(t, val.Validar(form))
}

func TestValidar_PasswordConfirmacion(t *testing.T) {
	val := validation.Nuevo()

	err := val.Validar(dto.PasswordRequest{Actual: "x", Nueva: "nuevo", Confirmacion: "otro"})
	require.Error(t, err)

	assert.NoError(t, val.Validar(dto.PasswordRequest{Actual: "x", Nueva: "nuevo", Confirmacion: "nuevo"}))
}

func TestValidar_FechaMalFormada(t *testing.T) {
	val := validation.Nuevo()
	form := permisoValido()
	form.FechaInicio = "01/03/2026"

	err := val.Validar(form)
	require.Error(t, err)
}

// Package optimistic generaliza el patrón "aplicar local, confirmar remoto,
// revertir si falla" que la pantalla de permisos implementaba a mano para el
// botón de aprobar/rechazar.
package optimistic

import "context"

// Mutar toma una instantánea de *estado, aplica el cambio local y ejecuta la
// operación remota. Si el remoto falla, restaura la instantánea completa (no
// solo el campo tocado: el backend puede haber aplicado efectos parciales que
// se reconcilian en la siguiente recarga) y devuelve el error.
func Mutar[T any](ctx context.Context, estado *T, aplicar func(*T), remoto func(context.Context) error) error {
	previo := *estado
	aplicar(estado)
	if err := remoto(ctx); err != nil {
		*estado = previo
		return err
	}
	return nil
}

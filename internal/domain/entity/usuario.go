package entity

// Usuario cuenta de acceso al sistema. El backend nunca devuelve la contraseña.
type Usuario struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"` // admin, supervisor, empleado

	FechaCreacion      string `json:"fecha_creacion,omitempty"`
	FechaActualizacion string `json:"fecha_actualizacion,omitempty"`
}

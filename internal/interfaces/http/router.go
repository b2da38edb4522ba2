package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/rrhh-admin/internal/application/listado"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/domain/access"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/restapi"
	"github.com/tu-usuario/rrhh-admin/internal/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Client       *restapi.Client
	Sesiones     *sesion.Manager
	Listados     *listado.Servicio
	Estadisticas *listado.ServicioEstadisticas
	Permisos     *listado.ServicioPermisos
	Validador    *validation.Validador
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (público: es la puerta de entrada)
	sesionHandler := NewSesionHandler(deps.Sesiones, deps.Client, deps.Validador)
	api.Post("/sesion", sesionHandler.Iniciar)

	// Rutas protegidas (requieren sesión vigente)
	protegido := api.Group("/", SesionMiddleware(deps.Sesiones))

	protegido.Get("/sesion", sesionHandler.Estado)
	protegido.Delete("/sesion", sesionHandler.Cerrar)
	protegido.Get("/sesion/preferencias", sesionHandler.Preferencias)
	protegido.Put("/sesion/preferencias", sesionHandler.GuardarPreferencias)

	// Perfil propio (solo requiere sesión)
	perfilHandler := NewPerfilHandler(deps.Client, deps.Validador, deps.Sesiones)
	protegido.Put("/perfil", perfilHandler.Actualizar)
	protegido.Put("/perfil/password", perfilHandler.CambiarPassword)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Estadisticas, deps.Sesiones)
	protegido.Get("/dashboard", RequerirModulo(access.ModuloDashboard, deps.Client), dashboardHandler.Estadisticas)

	// Pantallas de listado: mismo ciclo para todas, gate por módulo
	for nombre, pantalla := range listado.Pantallas() {
		handler := NewPantallaHandler(deps.Listados, deps.Validador, deps.Sesiones, pantalla)
		grupo := protegido.Group("/pantallas/"+nombre, RequerirModulo(pantalla.Modulo, deps.Client))
		grupo.Get("/", handler.Ver)
		grupo.Post("/", handler.Crear)
		grupo.Put("/:id", handler.Actualizar)
		grupo.Delete("/:id", handler.Eliminar)
	}

	// Resolución de permisos (aprobación/rechazo con cambio optimista)
	permisoHandler := NewPermisoHandler(deps.Permisos, deps.Validador, deps.Sesiones)
	protegido.Put("/pantallas/permisos/:id/estado", RequerirModulo(access.ModuloPermisos, deps.Client), permisoHandler.CambiarEstado)

	// Log transaccional (paginación del lado del backend)
	logsHandler := NewLogsHandler(deps.Client, deps.Sesiones)
	protegido.Get("/logs", RequerirModulo(access.ModuloLogs, deps.Client), logsHandler.Listar)

	// Espejo de la base de datos
	mirrorHandler := NewMirrorHandler(deps.Client, deps.Sesiones)
	mirror := protegido.Group("/mirror", RequerirModulo(access.ModuloMirror, deps.Client))
	mirror.Get("/status", mirrorHandler.Status)
	mirror.Get("/tables", mirrorHandler.Tables)
	mirror.Get("/table/:nombre", mirrorHandler.Table)
	mirror.Post("/setup", mirrorHandler.Setup)
}

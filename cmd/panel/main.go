package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/rrhh-admin/internal/application/listado"
	"github.com/tu-usuario/rrhh-admin/internal/application/sesion"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/localstore"
	"github.com/tu-usuario/rrhh-admin/internal/infrastructure/restapi"
	httpRouter "github.com/tu-usuario/rrhh-admin/internal/interfaces/http"
	"github.com/tu-usuario/rrhh-admin/internal/validation"
	"github.com/tu-usuario/rrhh-admin/pkg/config"
	"github.com/tu-usuario/rrhh-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.URL).
		Msg("iniciando panel")

	store, err := localstore.Abrir(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("ruta", cfg.Store.Path).Msg("abrir almacén local")
	}

	client := restapi.New(cfg.Backend.URL, cfg.Backend.Timeout(), log)
	sesiones := sesion.NewManager(store, log)
	validador := validation.Nuevo()

	listados := listado.NewServicio(client, cfg.Listado.PlegarAcentos, log)
	estadisticas := listado.NewServicioEstadisticas(client, log)
	permisos := listado.NewServicioPermisos(client, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Panel RRHH",
	}))

	app.Get("/salud", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Client:       client,
		Sesiones:     sesiones,
		Listados:     listados,
		Estadisticas: estadisticas,
		Permisos:     permisos,
		Validador:    validador,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("panel detenido")
}

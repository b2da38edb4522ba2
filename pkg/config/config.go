package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del panel (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Store   StoreConfig
	Listado ListadoConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP del panel.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig ubicación del backend REST de RRHH (colaborador externo).
type BackendConfig struct {
	// URL origen base del API, ej. http://127.0.0.1:5000
	URL string
	// TimeoutSeconds timeout de red para cada petición al backend.
	// El origen no tiene timeout; aquí se usa uno generoso y configurable.
	TimeoutSeconds int
}

// Timeout devuelve el timeout como time.Duration.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StoreConfig almacenamiento local del cliente (token de sesión y preferencias de UI).
// Equivalente al localStorage del navegador: sobrevive reinicios, no se comparte.
type StoreConfig struct {
	Path string // ruta del archivo JSON
}

// ListadoConfig opciones del motor de listados.
type ListadoConfig struct {
	// PlegarAcentos activa la búsqueda insensible a acentos ("lopez" encuentra "López").
	// Desactivado por defecto: el comportamiento base es substring simple.
	PlegarAcentos bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BACKEND_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "panel-rrhh"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			URL:            getString(v, "BACKEND_URL", "http://127.0.0.1:5000"),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 60),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "./panel-store.json"),
		},
		Listado: ListadoConfig{
			PlegarAcentos: getBool(v, "LISTADO_PLEGAR_ACENTOS", false),
		},
	}

	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("config: BACKEND_URL es requerido")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers soportados para el gateway de datos.
const (
	GatewayRemote   = "remote"
	GatewayPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Gateway GatewayConfig
	Report  ReportConfig
	Import  ImportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig configuración de PostgreSQL (solo se usa con GATEWAY_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens que emite la consola.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	AllowOrigins string // CORS, separado por comas
	BodyLimitMB  int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GatewayConfig configuración del gateway de datos remoto.
type GatewayConfig struct {
	Driver   string // remote | postgres
	BaseURL  string // ej. https://api.instituto.edu.pe/api
	Token    string // bearer de servicio para el API remoto
	Timeout  time.Duration
	PageSize int // tamaño de página al recorrer listados completos
}

// ReportConfig datos que aparecen en los reportes exportados.
type ReportConfig struct {
	Institution    string
	CurrencySymbol string
	Timezone       string
}

// Location devuelve la zona horaria de los reportes; si no es válida usa time.Local.
func (c ReportConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ImportConfig límites de la importación masiva.
type ImportConfig struct {
	Concurrency         int
	MaxFileMB           int
	DefaultCategoryID   int64
	DefaultLaboratoryID int64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, GATEWAY_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya cargada.
// Separado de Load para poder probarlo sin tocar el entorno del proceso.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-consola"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventario"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-consola"),
		},
		HTTP: HTTPConfig{
			Host:         getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:         getInt(v, "HTTP_PORT", 8080),
			AllowOrigins: getString(v, "HTTP_ALLOW_ORIGINS", "*"),
			BodyLimitMB:  getInt(v, "HTTP_BODY_LIMIT_MB", 10),
		},
		Gateway: GatewayConfig{
			Driver:   strings.ToLower(getString(v, "GATEWAY_DRIVER", GatewayRemote)),
			BaseURL:  strings.TrimRight(getString(v, "GATEWAY_BASE_URL", "http://localhost:8000/api"), "/"),
			Token:    getString(v, "GATEWAY_TOKEN", ""),
			Timeout:  time.Duration(getInt(v, "GATEWAY_TIMEOUT_SECONDS", 15)) * time.Second,
			PageSize: getInt(v, "GATEWAY_PAGE_SIZE", 100),
		},
		Report: ReportConfig{
			Institution:    getString(v, "REPORT_INSTITUTION", "Instituto Tecnológico"),
			CurrencySymbol: getString(v, "REPORT_CURRENCY", "S/."),
			Timezone:       getString(v, "REPORT_TIMEZONE", "America/Lima"),
		},
		Import: ImportConfig{
			Concurrency:         getInt(v, "IMPORT_CONCURRENCY", 4),
			MaxFileMB:           getInt(v, "IMPORT_MAX_FILE_MB", 5),
			DefaultCategoryID:   int64(getInt(v, "IMPORT_DEFAULT_CATEGORY_ID", 1)),
			DefaultLaboratoryID: int64(getInt(v, "IMPORT_DEFAULT_LABORATORY_ID", 1)),
		},
	}

	switch cfg.Gateway.Driver {
	case GatewayRemote, GatewayPostgres:
	default:
		return nil, fmt.Errorf("config: GATEWAY_DRIVER inválido %q (use remote o postgres)", cfg.Gateway.Driver)
	}
	if cfg.Gateway.PageSize <= 0 {
		cfg.Gateway.PageSize = 100
	}
	if cfg.Import.Concurrency <= 0 {
		cfg.Import.Concurrency = 1
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

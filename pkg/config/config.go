package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	// base de zonas embebida: imágenes mínimas no traen /usr/share/zoneinfo
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	Log  LogConfig
	DB   DBConfig
	JWT  JWTConfig
	HTTP HTTPConfig
	Push PushConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria de planta; define el "día calendario" de los reportes
}

// Location resuelve la zona horaria configurada. Debe ser un nombre IANA porque también se envía
// a PostgreSQL (AT TIME ZONE); "Local" o un nombre inválido usan UTC.
func (c AppConfig) Location() *time.Location {
	if strings.EqualFold(strings.TrimSpace(c.Timezone), "local") {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LogConfig nivel del logger estructurado.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	// ForceIPv4 marca el dial solo por IPv4 (contenedores sin red IPv6).
	ForceIPv4 bool
	// FallbackDNS servidor host:port consultado si el resolver local no devuelve registros A.
	FallbackDNS     string
	ApplicationName string
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	SwaggerFile    string
	LoginRateLimit float64 // peticiones por segundo por IP en /auth/login y /auth/register
	LoginBurst     int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PushConfig credenciales VAPID y tamaño del pool de envío de notificaciones.
type PushConfig struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string // mailto: o URL de contacto exigido por VAPID
	Workers         int
	QueueSize       int
	TTL             int // segundos
}

// Enabled indica si hay llaves VAPID configuradas.
func (c PushConfig) Enabled() bool {
	return c.VAPIDPublicKey != "" && c.VAPIDPrivateKey != ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
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

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "factory-ops"),
			Timezone: getString(v, "APP_TIMEZONE", "UTC"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "factory_ops"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 25),
			MinConns:    getInt(v, "DB_MIN_CONNS", 2),
			ForceIPv4:   getBool(v, "DB_FORCE_IPV4", true),
			FallbackDNS: getString(v, "DB_FALLBACK_DNS", "8.8.8.8:53"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "factory-ops"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			SwaggerFile:    getString(v, "HTTP_SWAGGER_FILE", "./docs/swagger.json"),
			LoginRateLimit: getFloat(v, "HTTP_LOGIN_RATE_LIMIT", 1),
			LoginBurst:     getInt(v, "HTTP_LOGIN_BURST", 5),
		},
		Push: PushConfig{
			VAPIDPublicKey:  getString(v, "PUSH_VAPID_PUBLIC_KEY", ""),
			VAPIDPrivateKey: getString(v, "PUSH_VAPID_PRIVATE_KEY", ""),
			Subscriber:      getString(v, "PUSH_SUBSCRIBER", "mailto:ops@example.com"),
			Workers:         getInt(v, "PUSH_WORKERS", 4),
			QueueSize:       getInt(v, "PUSH_QUEUE_SIZE", 100),
			TTL:             getInt(v, "PUSH_TTL_SECONDS", 3600),
		},
	}

	cfg.DB.ApplicationName = cfg.App.Name

	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en production")
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
			n, err := strconv.Atoi(v.GetString(key))
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(v.GetString(key))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		f, err := strconv.ParseFloat(v.GetString(key), 64)
		if err != nil {
			return def
		}
		return f
	}
	return def
}

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de persistencia soportados.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	HTTP    HTTPConfig
	Client  ClientConfig
	Swagger SwaggerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	StoreDriver string // postgres | memory
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	// Instance instancia nombrada ("host\instancia" en DB_HOST o DB_INSTANCE).
	// En PostgreSQL se traduce al schema de trabajo (search_path).
	Instance               string
	Port                   int
	User                   string
	Password               string
	DBName                 string
	Encrypt                bool
	TrustServerCertificate bool
	SSLMode                string // explícito; si está vacío se deriva de Encrypt/TrustServerCertificate
	AutoMigrate            bool
	ConnectTimeout         time.Duration
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
	userInfo := url.UserPassword(c.User, c.Password)

	q := url.Values{}
	q.Set("sslmode", c.EffectiveSSLMode())
	if c.Instance != "" {
		q.Set("search_path", c.Instance)
	}
	if c.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(c.ConnectTimeout.Seconds())))
	}

	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// EffectiveSSLMode sslmode final: DB_SSLMODE si está definido; si no, sin cifrado → disable,
// cifrado confiando en el certificado → require, cifrado sin confiar → verify-full.
func (c DBConfig) EffectiveSSLMode() string {
	if c.SSLMode != "" {
		return c.SSLMode
	}
	if !c.Encrypt {
		return "disable"
	}
	if c.TrustServerCertificate {
		return "require"
	}
	return "verify-full"
}

// SplitInstance separa "host\instancia" (o "host/instancia") en sus dos partes.
func SplitInstance(server string) (host, instance string) {
	server = strings.TrimSpace(server)
	if i := strings.IndexAny(server, `\/`); i >= 0 {
		return server[:i], server[i+1:]
	}
	return server, ""
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ClientConfig configuración del cliente de la API (crmctl).
type ClientConfig struct {
	APIURL  string
	Timeout time.Duration
}

// SwaggerConfig ubicación del swagger.json servido en /docs.
type SwaggerConfig struct {
	FilePath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, HTTP_PORT, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	host, instance := SplitInstance(getString(v, "DB_HOST", "localhost"))
	if explicit := getString(v, "DB_INSTANCE", ""); explicit != "" {
		instance = explicit
	}

	// HOST/PORT: alias heredados del bootstrap simple.
	httpHost := getString(v, "HTTP_HOST", getString(v, "HOST", "0.0.0.0"))
	httpPort := getInt(v, "HTTP_PORT", getInt(v, "PORT", 3001))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "facturacion-api"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			StoreDriver: strings.ToLower(getString(v, "STORE_DRIVER", StoreDriverPostgres)),
		},
		DB: DBConfig{
			DatabaseURL:            getString(v, "DATABASE_URL", ""),
			Host:                   host,
			Instance:               instance,
			Port:                   getInt(v, "DB_PORT", 5432),
			User:                   getString(v, "DB_USER", "postgres"),
			Password:               getString(v, "DB_PASSWORD", ""),
			DBName:                 getString(v, "DB_NAME", "crm"),
			Encrypt:                getBool(v, "DB_ENCRYPT", false),
			TrustServerCertificate: getBool(v, "DB_TRUST_SERVER_CERTIFICATE", false),
			SSLMode:                getString(v, "DB_SSLMODE", ""),
			AutoMigrate:            getBool(v, "DB_AUTO_MIGRATE", true),
			ConnectTimeout:         getDuration(v, "DB_CONNECT_TIMEOUT", 30*time.Second),
		},
		HTTP: HTTPConfig{
			Host: httpHost,
			Port: httpPort,
		},
		Client: ClientConfig{
			APIURL:  strings.TrimRight(getString(v, "API_URL", "http://localhost:3001"), "/"),
			Timeout: getDuration(v, "API_TIMEOUT", 30*time.Second),
		},
		Swagger: SwaggerConfig{
			FilePath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
	}

	if cfg.App.StoreDriver != StoreDriverPostgres && cfg.App.StoreDriver != StoreDriverMemory {
		return nil, fmt.Errorf("STORE_DRIVER inválido %q (postgres|memory)", cfg.App.StoreDriver)
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT inválido: %d", cfg.HTTP.Port)
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		d, err := time.ParseDuration(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return d
	}
	return def
}

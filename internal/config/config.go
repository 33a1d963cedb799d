package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger = key("logger")
	KeyUUID   = key("uuid")
)

type Config struct {
	Service  Service
	Platform Platform
	Logger   Logger
	API      API
	Socket   Socket
	Auth     Auth
	Postgres Postgres
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"pingr"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST" env-default:"localhost"`
	Port string `env:"LOGGER_SERVICE_PORT" env-default:"5114"`
}

// API configures the REST client side.
type API struct {
	BaseURL string        `env:"PINGR_API_URL" env-default:"http://localhost:8080/api"`
	Timeout time.Duration `env:"PINGR_API_TIMEOUT" env-default:"15s"`
}

// Socket configures the realtime client side.
type Socket struct {
	URL string `env:"PINGR_SOCKET_URL" env-default:"ws://localhost:8080/socket"`
}

type Auth struct {
	// Token is the access token the client presents; obtained via login
	// or provided directly.
	Token     string `env:"PINGR_TOKEN" env-default:""`
	JWTSecret string `env:"JWT_SECRET" env-default:"dev-secret"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `env:"POSTGRES_DB" env-default:"pingr"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}
	return cfg
}

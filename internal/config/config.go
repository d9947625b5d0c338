package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config agrupa toda la configuración del servicio.
// Todo viene de variables de entorno; los secretos (JWT_SECRET, DB_DSN)
// nunca se loguean completos.
type Config struct {
	Port string `env:"PORT" env-default:"8080"`

	// DSN de Postgres. Vacío => repos in-memory (modo dev/tests).
	DBDSN string `env:"DB_DSN" env-default:""`

	// Secreto HS256 para emitir/verificar tokens.
	JWTSecret string `env:"JWT_SECRET" env-default:""`

	// Vigencia de los tokens emitidos en login.
	TokenTTL time.Duration `env:"TOKEN_TTL" env-default:"24h"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
	AppName   string `env:"APP_NAME" env-default:"petshop-api"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive")
	}

	return cfg, nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c Config) Addr() string {
	return ":" + c.Port
}

package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	ReplyDelay      time.Duration `env:"REPLY_DELAY" envDefault:"500ms"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	MaxSessions     int           `env:"MAX_SESSIONS" envDefault:"10000"`
	TranscriptLimit int           `env:"TRANSCRIPT_LIMIT" envDefault:"10"`
	ContentFile     string        `env:"CONTENT_FILE"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"20"`
	TrustedProxies  []string      `env:"TRUSTED_PROXIES" envSeparator:","`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

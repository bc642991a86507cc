package config

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Proveedores del sentimiento general.
const (
	SentimentVader  = "vader"
	SentimentLLM    = "llm"
	SentimentGoogle = "google"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"5000"`
	AppEnv      string `env:"APP_ENV" envDefault:"production"`
	DatabaseURL string `env:"DATABASE_URL"`

	QuestionsFile string `env:"QUESTIONS_FILE" envDefault:"questions/questions.yaml"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RateLimitPerMinute int   `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	MaxUploadMB        int64 `env:"MAX_UPLOAD_MB" envDefault:"16"`

	ExtractorBaseURL        string `env:"EXTRACTOR_BASE_URL" envDefault:"http://localhost:8001"`
	ExtractorTimeoutSeconds int    `env:"EXTRACTOR_TIMEOUT_SECONDS" envDefault:"120"`

	SentimentProvider string `env:"SENTIMENT_PROVIDER" envDefault:"vader"`
	LLMAPIKey         string `env:"LLM_API_KEY"`
	LLMBaseURL        string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel          string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`

	// Credenciales de service account en base64.
	GoogleNLCredentials string `env:"GOOGLE_NL_CREDENTIALS"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) Validate() error {
	c.SentimentProvider = strings.ToLower(strings.TrimSpace(c.SentimentProvider))
	switch c.SentimentProvider {
	case SentimentVader:
	case SentimentLLM:
		if c.LLMAPIKey == "" {
			return fmt.Errorf("LLM_API_KEY is required when SENTIMENT_PROVIDER=%s", SentimentLLM)
		}
	case SentimentGoogle:
		if c.GoogleNLCredentials == "" {
			return fmt.Errorf("GOOGLE_NL_CREDENTIALS is required when SENTIMENT_PROVIDER=%s", SentimentGoogle)
		}
	default:
		return fmt.Errorf("unknown SENTIMENT_PROVIDER %q", c.SentimentProvider)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// MaxUploadBytes devuelve el límite del cuerpo de las subidas en bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func (c *Config) ExtractorTimeout() time.Duration {
	if c.ExtractorTimeoutSeconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.ExtractorTimeoutSeconds) * time.Second
}

// GoogleCredentialsJSON decodifica GOOGLE_NL_CREDENTIALS.
func (c *Config) GoogleCredentialsJSON() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(c.GoogleNLCredentials))
	if err != nil {
		return nil, fmt.Errorf("decode GOOGLE_NL_CREDENTIALS: %w", err)
	}
	return raw, nil
}

package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// Extraction service.
	LLMEndpoint  string
	LLMAPIKey    string
	LLMModel     string
	LLMMaxTokens int

	// Database. DatabaseURL wins when set; otherwise it is assembled
	// from the discrete DB_* parameters.
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMEndpoint:     getEnv("LLM_ENDPOINT", "https://api.openai.com/v1/chat/completions"),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMModel:        getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxTokens:    getEnvInt("LLM_MAX_TOKENS", 512),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		DBHost:          getEnv("DB_HOST", ""),
		DBUser:          getEnv("DB_USER", ""),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          getEnv("DB_NAME", ""),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	}

	if env == "production" {
		if cfg.DatabaseURL == "" {
			log.Printf("DATABASE_URL or DB_* parameters are required in production")
		}
		if cfg.LLMAPIKey == "" {
			log.Printf("LLM_API_KEY is required in production")
		}
	}

	return cfg
}

// buildDatabaseURL assembles a pgx connection URL from discrete parameters.
// Returns empty when the host or database name is missing.
func buildDatabaseURL(host, user, password, name string) string {
	if strings.TrimSpace(host) == "" || strings.TrimSpace(name) == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   host,
		Path:   "/" + name,
	}
	if user != "" {
		if password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}
	q := u.Query()
	q.Set("sslmode", "prefer")
	u.RawQuery = q.Encode()
	return u.String()
}

// Redacted returns a copy of the config safe for logging.
func (c Config) Redacted() map[string]any {
	return map[string]any{
		"port":           c.Port,
		"env":            c.Env,
		"llm_endpoint":   c.LLMEndpoint,
		"llm_model":      c.LLMModel,
		"llm_max_tokens": c.LLMMaxTokens,
		"llm_key_set":    c.LLMAPIKey != "",
		"db_configured":  c.DatabaseURL != "",
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		log.Printf("invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

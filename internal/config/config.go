package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SheetsBackendGoogle = "google"
	SheetsBackendProxy  = "proxy"

	SemanticProviderNone   = ""
	SemanticProviderOpenAI = "openai"
	SemanticProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Sheets   SheetsConfig
	Semantic SemanticConfig
	Security SecurityConfig
	Budget   BudgetConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedData        bool
}

type SheetsConfig struct {
	Backend           string
	SpreadsheetID     string
	TransactionSheets []string
	CredentialsFile   string
	TokenFile         string
	ProxyURL          string
	ProxySecret       string
	RequestTimeout    time.Duration
}

type SemanticConfig struct {
	Provider      string
	OpenAIAPIKey  string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string
	CallTimeout   time.Duration
	BatchInterval time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	SecretsPassphrase  string
}

type BudgetConfig struct {
	PayPeriodsPerYear int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: no .env file found, using process environment")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budget_user"),
			Password:        getEnv("DB_PASSWORD", "budget_password"),
			Name:            getEnv("DB_NAME", "budget_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedData:        getBoolEnv("SEED_DATABASE", false),
		},
		Sheets: SheetsConfig{
			Backend:           getEnv("SHEETS_BACKEND", SheetsBackendGoogle),
			SpreadsheetID:     getEnv("SHEETS_SPREADSHEET_ID", ""),
			TransactionSheets: getListEnv("SHEETS_TRANSACTION_SHEETS", []string{"Transactions"}),
			CredentialsFile:   getEnv("SHEETS_CREDENTIALS_FILE", "credentials.json"),
			TokenFile:         getEnv("SHEETS_TOKEN_FILE", "token.json"),
			ProxyURL:          getEnv("SHEETS_PROXY_URL", ""),
			ProxySecret:       getEnv("SHEETS_PROXY_SECRET", ""),
			RequestTimeout:    getDurationEnv("SHEETS_REQUEST_TIMEOUT", 30*time.Second),
		},
		Semantic: SemanticConfig{
			Provider:      getEnv("SEMANTIC_PROVIDER", SemanticProviderNone),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			CallTimeout:   getDurationEnv("SEMANTIC_CALL_TIMEOUT", 8*time.Second),
			BatchInterval: getDurationEnv("SEMANTIC_BATCH_INTERVAL", 500*time.Millisecond),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			SecretsPassphrase:  getEnv("SECRETS_PASSPHRASE", ""),
		},
		Budget: BudgetConfig{
			PayPeriodsPerYear: getIntEnv("BUDGET_PAY_PERIODS_PER_YEAR", 26),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	return config
}

// Validate rejects settings the services cannot start with. Called by Load,
// exported so tests can exercise hand-built configs.
func (c *Config) Validate() error {
	switch c.Sheets.Backend {
	case SheetsBackendGoogle, SheetsBackendProxy:
	default:
		return fmt.Errorf("unknown sheets backend %q", c.Sheets.Backend)
	}

	if c.Sheets.Backend == SheetsBackendProxy && c.Sheets.ProxyURL == "" {
		return fmt.Errorf("SHEETS_PROXY_URL is required when SHEETS_BACKEND=proxy")
	}

	switch c.Semantic.Provider {
	case SemanticProviderNone, SemanticProviderOpenAI, SemanticProviderGemini:
	default:
		return fmt.Errorf("unknown semantic provider %q", c.Semantic.Provider)
	}

	if c.Budget.PayPeriodsPerYear <= 0 {
		return fmt.Errorf("BUDGET_PAY_PERIODS_PER_YEAR must be positive, got %d", c.Budget.PayPeriodsPerYear)
	}

	if c.Security.RateLimitPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_SECOND must be positive, got %d", c.Security.RateLimitPerSecond)
	}

	return nil
}

// SemanticEnabled reports whether a provider is configured with a usable key.
func (c *Config) SemanticEnabled() bool {
	switch c.Semantic.Provider {
	case SemanticProviderOpenAI:
		return c.Semantic.OpenAIAPIKey != ""
	case SemanticProviderGemini:
		return c.Semantic.GeminiAPIKey != ""
	default:
		return false
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

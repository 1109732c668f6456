package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
)

// Catalog manbalari
const (
	SourceFile     = constants.CatalogSourceFile
	SourcePostgres = constants.CatalogSourcePostgres
	SourceSQLite   = constants.CatalogSourceSQLite
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	LogLevel  string
	LogPretty bool

	CatalogPath   string
	CatalogSource string
	ProfilesPath  string
	PostgresDSN   string
	SQLitePath    string

	PSUSafetyMargin        float64
	BaseSystemPower        int
	MaxDowngradeIterations int

	TelegramToken     string
	GeminiAPIKey      string
	AllowEmptySecrets bool
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogPretty:         getEnvBool("LOG_PRETTY", false),
		CatalogPath:       getEnv("CATALOG_PATH", "data/parts-data.json"),
		CatalogSource:     strings.ToLower(getEnv("CATALOG_SOURCE", SourceFile)),
		ProfilesPath:      strings.TrimSpace(os.Getenv("PROFILES_PATH")),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		SQLitePath:        getEnv("SQLITE_PATH", "data/catalog.db"),
		TelegramToken:     strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		GeminiAPIKey:      strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
	}

	var err error
	if config.PSUSafetyMargin, err = getEnvFloat("PSU_SAFETY_MARGIN", constants.DefaultPSUSafetyMargin); err != nil {
		return nil, err
	}
	if config.BaseSystemPower, err = getEnvInt("BASE_SYSTEM_POWER", constants.DefaultBaseSystemPower); err != nil {
		return nil, err
	}
	if config.MaxDowngradeIterations, err = getEnvInt("MAX_DOWNGRADE_ITERATIONS", constants.DefaultMaxDowngradeIterations); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate qiymatlar chegarasini tekshirish
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceFile:
		if c.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH bo'sh")
		}
	case SourcePostgres:
	case SourceSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH bo'sh")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE %q noto'g'ri (file, postgres yoki sqlite)", c.CatalogSource)
	}
	if c.PSUSafetyMargin < 1.0 || c.PSUSafetyMargin > 3.0 {
		return fmt.Errorf("PSU_SAFETY_MARGIN %.2f must be between 1.0 and 3.0", c.PSUSafetyMargin)
	}
	if c.BaseSystemPower < 0 {
		return fmt.Errorf("BASE_SYSTEM_POWER must not be negative")
	}
	if c.MaxDowngradeIterations < 1 {
		return fmt.Errorf("MAX_DOWNGRADE_ITERATIONS must be at least 1")
	}
	return nil
}

// RequireBotSecrets bot uchun token majburiy, unless ALLOW_EMPTY_SECRETS is set
func (c *Config) RequireBotSecrets() error {
	if c.AllowEmptySecrets {
		return nil
	}
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s noto'g'ri formatda: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s noto'g'ri formatda: %w", key, err)
	}
	return f, nil
}

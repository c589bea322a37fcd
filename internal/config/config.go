// Package config loads application configuration from an optional
// config.yaml, .env, and the environment, following the teacher's
// viper + godotenv pattern.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	AI          AIConfig          `mapstructure:"ai"`
	Application ApplicationConfig `mapstructure:"application"`
	Parser      ParserConfig      `mapstructure:"parser"`
}

type ApplicationConfig struct {
	Name      string        `mapstructure:"name"`
	Version   string        `mapstructure:"version"`
	LastBuild string        `mapstructure:"last_build"`
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Author    string        `mapstructure:"author"`
	Copyright string        `mapstructure:"copyright"`
	Storage   StorageConfig `mapstructure:"storage"`
}

type StorageConfig struct {
	Stage     string `mapstructure:"stage"`
	Processed string `mapstructure:"processed"`
}

// ParserConfig carries the resource bounds spec.md §5 hard-codes,
// exposed as operator-tunable settings (they can only ever be
// tightened relative to the spec's numbers, never loosened past them,
// since the bounds exist to guarantee termination on adversarial
// input).
type ParserConfig struct {
	MaxRecursionDepth    int `mapstructure:"max_recursion_depth"`
	MaxRecordsPerLevel   int `mapstructure:"max_records_per_level"`
	MaxRecordLengthBytes int `mapstructure:"max_record_length_bytes"`
	MaxPropertiesPerSet  int `mapstructure:"max_properties_per_set"`
}

type AIConfig struct {
	ActiveProvider string                      `mapstructure:"active_provider"`
	Providers      map[string]ProviderSettings `mapstructure:"providers"`
}

type ProviderSettings struct {
	Driver      string  `mapstructure:"driver"` // gemini, openai, anthropic
	Key         string  `mapstructure:"key"`
	Endpoint    string  `mapstructure:"endpoint"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	Options  string `mapstructure:"options"`
}

func (c *DatabaseConfig) GetConnectStr() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, sslmode)

	if c.Options != "" {
		encodedOptions := strings.ReplaceAll(c.Options, " ", "%20")
		connStr += fmt.Sprintf("&options=%s", encodedOptions)
	}

	return connStr
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not found, using system environment variables")
	}

	viper.SetConfigFile("config.yaml") // Support optional config.yaml
	viper.AutomaticEnv()

	mappings := []struct {
		key, env string
	}{
		{"database.url", "DB_URL"},
		{"database.host", "PG_HOST"},
		{"database.port", "PG_PORT"},
		{"database.user", "PG_USER"},
		{"database.password", "PG_PASSWORD"},
		{"database.dbname", "PG_DB"},
		{"database.sslmode", "PG_SSLMODE"},
		{"database.options", "PG_OPTIONS"},
		{"application.port", "PORT"},

		{"application.storage.stage", "STORAGE_STAGE"},
		{"application.storage.processed", "STORAGE_PROCESSED"},

		{"ai.active_provider", "AI_PROVIDER"},
		{"ai.providers.gemini.key", "GEMINI_KEY"},
		{"ai.providers.gemini.model", "GEMINI_MODEL"},
		{"ai.providers.openai.key", "OPENAI_API_KEY"},
		{"ai.providers.openai.model", "OPENAI_MODEL"},
		{"ai.providers.claude.key", "ANTHROPIC_API_KEY"},
		{"ai.providers.claude.model", "CLAUDE_MODEL"},

		{"parser.max_recursion_depth", "PARSER_MAX_RECURSION_DEPTH"},
		{"parser.max_records_per_level", "PARSER_MAX_RECORDS_PER_LEVEL"},
		{"parser.max_record_length_bytes", "PARSER_MAX_RECORD_LENGTH_BYTES"},
		{"parser.max_properties_per_set", "PARSER_MAX_PROPERTIES_PER_SET"},
	}

	for _, m := range mappings {
		viper.BindEnv(m.key, m.env)
	}

	viper.SetDefault("application.storage.stage", "./data/stage")
	viper.SetDefault("application.storage.processed", "./data/processed")

	// Defaults match spec.md §5's termination bounds exactly.
	viper.SetDefault("parser.max_recursion_depth", 50)
	viper.SetDefault("parser.max_records_per_level", 100000)
	viper.SetDefault("parser.max_record_length_bytes", 100*1024*1024)
	viper.SetDefault("parser.max_properties_per_set", 1000)

	if err := viper.ReadInConfig(); err != nil {
		// Ignore if config.yaml is missing
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.AI.ActiveProvider == "" {
		cfg.AI.ActiveProvider = "gemini"
	}

	return &cfg, nil
}

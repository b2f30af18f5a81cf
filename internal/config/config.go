// internal/config/config.go
//
// Runtime configuration for the solver CLI and server.
// Responsibilities:
//   - Load .env (godotenv) so local runs pick up developer settings.
//   - Start from defaults, overlay an optional YAML file, then environment.
//   - Validate the result before anything is opened.
//
// Precedence, lowest first: defaults, YAML file, environment variables.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Dictionary kinds.
const (
	DictionaryEmbedded = "embedded"
	DictionaryFile     = "file"
	DictionarySQLite   = "sqlite"
	DictionaryBigQuery = "bigquery"
	DictionaryGCS      = "gcs"
)

// Store kinds.
const (
	StoreMemory = "memory"
	StoreBadger = "badger"
)

// Config is the full set of runtime settings.
type Config struct {
	Port         string `yaml:"port" validate:"required,numeric"`
	LogLevel     string `yaml:"logLevel" validate:"oneof=trace debug info warn error fatal panic disabled"`
	WordLength   int    `yaml:"wordLength" validate:"min=1,max=32"`
	SuggestLimit int    `yaml:"suggestLimit" validate:"min=0"`
	ClientOrigin string `yaml:"clientOrigin"` // browser origin allowed by CORS; empty disables CORS

	Dictionary Dictionary `yaml:"dictionary"`
	Store      Store      `yaml:"store"`
	Auth       Auth       `yaml:"auth"`
	RateLimit  RateLimit  `yaml:"rateLimit"`
}

// Dictionary selects and configures the word source.
type Dictionary struct {
	Kind  string `yaml:"kind" validate:"oneof=embedded file sqlite bigquery gcs"`
	Path  string `yaml:"path"` // file kind; empty means the default cache path
	Watch bool   `yaml:"watch"`

	SQLitePath string `yaml:"sqlitePath" validate:"required_if=Kind sqlite"`

	BigQueryProject string `yaml:"bigqueryProject" validate:"required_if=Kind bigquery"`
	BigQueryTable   string `yaml:"bigqueryTable" validate:"required_if=Kind bigquery"`
	BigQueryColumn  string `yaml:"bigqueryColumn"`

	GCSBucket          string `yaml:"gcsBucket" validate:"required_if=Kind gcs"`
	GCSObject          string `yaml:"gcsObject" validate:"required_if=Kind gcs"`
	GCSCredentialsFile string `yaml:"gcsCredentialsFile"`
}

// Store selects where sessions live.
type Store struct {
	Kind       string `yaml:"kind" validate:"oneof=memory badger"`
	BadgerPath string `yaml:"badgerPath" validate:"required_if=Kind badger"`
}

// Auth is disabled when SecretHash is empty.
type Auth struct {
	SecretHash   string `yaml:"secretHash"`
	JWTSecret    string `yaml:"jwtSecret" validate:"required_with=SecretHash"`
	ExpiresHours int    `yaml:"expiresHours" validate:"min=1"`
}

// Enabled reports whether token auth is switched on.
func (a Auth) Enabled() bool { return a.SecretHash != "" }

// RateLimit is per client IP. RPS 0 disables limiting.
type RateLimit struct {
	RPS   float64 `yaml:"rps" validate:"min=0"`
	Burst int     `yaml:"burst" validate:"min=1"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:         "5175",
		LogLevel:     "info",
		WordLength:   5,
		SuggestLimit: 10,
		ClientOrigin: "http://localhost:5173",
		Dictionary: Dictionary{
			Kind:           DictionaryEmbedded,
			SQLitePath:     "./data/words.db",
			BigQueryColumn: "word",
		},
		Store: Store{
			Kind:       StoreMemory,
			BadgerPath: "./data/sessions",
		},
		Auth: Auth{
			ExpiresHours: 24 * 7,
		},
		RateLimit: RateLimit{
			RPS:   10,
			Burst: 20,
		},
	}
}

var validate = validator.New()

// Load builds the configuration. path names an optional YAML file; when
// empty, CONFIG_FILE is consulted.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Dictionary.Kind = strings.ToLower(cfg.Dictionary.Kind)
	cfg.Store.Kind = strings.ToLower(cfg.Store.Kind)

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.ClientOrigin = getEnv("CLIENT_ORIGIN", cfg.ClientOrigin)

	d := &cfg.Dictionary
	d.Kind = getEnv("DICTIONARY_KIND", d.Kind)
	d.Path = getEnv("DICTIONARY_PATH", d.Path)
	d.SQLitePath = getEnv("SQLITE_PATH", d.SQLitePath)
	d.BigQueryProject = getEnv("BIGQUERY_PROJECT", d.BigQueryProject)
	d.BigQueryTable = getEnv("BIGQUERY_TABLE", d.BigQueryTable)
	d.BigQueryColumn = getEnv("BIGQUERY_COLUMN", d.BigQueryColumn)
	d.GCSBucket = getEnv("GCS_BUCKET", d.GCSBucket)
	d.GCSObject = getEnv("GCS_OBJECT", d.GCSObject)
	d.GCSCredentialsFile = getEnv("GCS_CREDENTIALS_FILE", d.GCSCredentialsFile)

	cfg.Store.Kind = getEnv("STORE_KIND", cfg.Store.Kind)
	cfg.Store.BadgerPath = getEnv("BADGER_PATH", cfg.Store.BadgerPath)

	cfg.Auth.SecretHash = getEnv("AUTH_SECRET_HASH", cfg.Auth.SecretHash)
	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)

	var err error
	if cfg.WordLength, err = getEnvInt("WORD_LENGTH", cfg.WordLength); err != nil {
		return err
	}
	if cfg.SuggestLimit, err = getEnvInt("SUGGEST_LIMIT", cfg.SuggestLimit); err != nil {
		return err
	}
	if d.Watch, err = getEnvBool("DICTIONARY_WATCH", d.Watch); err != nil {
		return err
	}
	if cfg.Auth.ExpiresHours, err = getEnvInt("JWT_EXPIRES_HOURS", cfg.Auth.ExpiresHours); err != nil {
		return err
	}
	if cfg.RateLimit.RPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimit.RPS); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}

func getEnvFloat(k string, def float64) (float64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return f, nil
}

func getEnvBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

// Package config provides configuration management for the Tenure Registry
// intake service.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Intake   IntakeConfig   `mapstructure:"intake"`
	Watch    WatchConfig    `mapstructure:"watch"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Log      LogConfig      `mapstructure:"log"`
	River    RiverConfig    `mapstructure:"river"`
	Security SecurityConfig `mapstructure:"security"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// CORS settings for the review frontend.
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
	AllowCredentials      bool     `mapstructure:"allow_credentials"`
	UnsafeAllowAllOrigins bool     `mapstructure:"unsafe_allow_all_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// One shared connection pool serves Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	// Pool configuration (shared by Ent and River)
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// IntakeConfig contains package intake pipeline settings.
type IntakeConfig struct {
	// SpoolDir receives uploaded .uhc files before archival.
	SpoolDir string `mapstructure:"spool_dir"`
	// ArchiveDir is the root of the archives/YYYY/MM tree.
	ArchiveDir string `mapstructure:"archive_dir"`
	// BlobDir is the root of the content-addressed attachment store.
	BlobDir string `mapstructure:"blob_dir"`
	// VocabularyDir holds the vocabulary YAML files.
	VocabularyDir string `mapstructure:"vocabulary_dir"`

	// MaxPackageSizeBytes rejects uploads beyond this size. Zero disables
	// the ceiling.
	MaxPackageSizeBytes int64 `mapstructure:"max_package_size_bytes"`

	Signature SignatureConfig `mapstructure:"signature"`
}

// SignatureConfig is the package signature policy. A single global policy
// applies to every device fleet.
type SignatureConfig struct {
	// Required quarantines packages that arrive unsigned.
	Required bool `mapstructure:"required"`
	// PublicKey is the base64-encoded ed25519 verification key.
	PublicKey string `mapstructure:"public_key"`
}

// WatchConfig controls watched-folder ingestion.
type WatchConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
	// PollInterval is the rescan cadence backing up fsnotify events.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// AutoAdvance runs load + validate + detect after a successful receive.
	AutoAdvance bool `mapstructure:"auto_advance"`
}

// NotifyConfig controls reviewer inbox notifications. Reviewers are token
// subjects; an empty list disables the inbox.
type NotifyConfig struct {
	Reviewers []string `mapstructure:"reviewers"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console

	// Optional rotating file sink.
	FileEnabled    bool   `mapstructure:"file_enabled"`
	FilePath       string `mapstructure:"file_path"`
	FileMaxSizeMB  int    `mapstructure:"file_max_size_mb"`
	FileMaxBackups int    `mapstructure:"file_max_backups"`
	FileMaxAgeDays int    `mapstructure:"file_max_age_days"`
	FileCompress   bool   `mapstructure:"file_compress"`
}

// RiverConfig contains River Queue settings.
type RiverConfig struct {
	MaxWorkers                  int           `mapstructure:"max_workers"`
	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// SecurityConfig contains security-related settings.
// Missing secrets are auto-generated on first boot.
type SecurityConfig struct {
	// JWTSecret signs and verifies HS256 bearer tokens.
	JWTSecret string `mapstructure:"jwt_secret"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize int `mapstructure:"general_pool_size"`
	DetectPoolSize  int `mapstructure:"detect_pool_size"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL, SERVER_PORT,
// INTAKE_SPOOL_DIR, etc.).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/uhc-registry")

	// Environment variable override.
	// Maps nested config: intake.spool_dir → INTAKE_SPOOL_DIR
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret must not be empty")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters")
	}
	if c.Intake.SpoolDir == "" {
		return fmt.Errorf("intake.spool_dir must not be empty")
	}
	if c.Intake.ArchiveDir == "" {
		return fmt.Errorf("intake.archive_dir must not be empty")
	}
	if c.Intake.BlobDir == "" {
		return fmt.Errorf("intake.blob_dir must not be empty")
	}
	if c.Intake.Signature.Required {
		if c.Intake.Signature.PublicKey == "" {
			return fmt.Errorf("intake.signature.public_key required when signatures are enforced")
		}
		key, err := base64.StdEncoding.DecodeString(c.Intake.Signature.PublicKey)
		if err != nil {
			return fmt.Errorf("intake.signature.public_key is not valid base64: %w", err)
		}
		if len(key) != 32 {
			return fmt.Errorf("intake.signature.public_key must decode to 32 bytes, got %d", len(key))
		}
	}
	if c.Watch.Enabled && c.Watch.Dir == "" {
		return fmt.Errorf("watch.dir must not be empty when watch.enabled is true")
	}
	return nil
}

// ensureSecrets auto-generates missing secrets on first boot.
func (c *Config) ensureSecrets() error {
	if c.Security.JWTSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate jwt secret: %w", err)
		}
		c.Security.JWTSecret = secret
		logBootstrapWarn(
			"auto-generated jwt_secret; set SECURITY_JWT_SECRET env var for persistence across restarts",
			zap.Int("length", len(secret)),
		)
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.allow_credentials", true)
	v.SetDefault("server.unsafe_allow_all_origins", false)

	// Database (shared pool)
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "registry")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "registry")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Intake
	v.SetDefault("intake.spool_dir", "data/spool")
	v.SetDefault("intake.archive_dir", "data/archives")
	v.SetDefault("intake.blob_dir", "data/blobs")
	v.SetDefault("intake.vocabulary_dir", "data/vocabularies")
	v.SetDefault("intake.max_package_size_bytes", int64(2<<30)) // 2 GiB
	v.SetDefault("intake.signature.required", false)
	v.SetDefault("intake.signature.public_key", "")

	// Watched-folder ingestion
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.dir", "")
	v.SetDefault("watch.poll_interval", "30s")
	v.SetDefault("watch.auto_advance", false)

	// Reviewer notifications
	v.SetDefault("notify.reviewers", []string{})

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file_enabled", false)
	v.SetDefault("log.file_path", "logs/registry.log")
	v.SetDefault("log.file_max_size_mb", 100)
	v.SetDefault("log.file_max_backups", 5)
	v.SetDefault("log.file_max_age_days", 30)
	v.SetDefault("log.file_compress", true)

	// River
	v.SetDefault("river.max_workers", 10)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Security
	v.SetDefault("security.jwt_secret", "")

	// Worker pools
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.detect_pool_size", 16)
}

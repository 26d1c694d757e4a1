package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
	Gateway       GatewayConfig       `yaml:"gateway"`
	SMTP          SMTPConfig          `yaml:"smtp"`
	JWT           JWTConfig           `yaml:"jwt"`
	Storage       StorageConfig       `yaml:"storage"`
	Log           LogConfig           `yaml:"log"`
	Fleet         FleetConfig         `yaml:"fleet"`
	Damage        DamageConfig        `yaml:"damage"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// DocumentStoreConfig contains MongoDB settings for the document-side
// collections.
type DocumentStoreConfig struct {
	URI                     string `yaml:"uri"`
	Database                string `yaml:"database"`
	HistoryCollection       string `yaml:"history_collection"`
	PreConditionCollection  string `yaml:"pre_condition_collection"`
	PostConditionCollection string `yaml:"post_condition_collection"`
	RatingCollection        string `yaml:"rating_collection"`
}

// GatewayConfig contains payment gateway settings. Simulate swaps the
// hosted gateway for the in-process fake.
type GatewayConfig struct {
	Simulate  bool   `yaml:"simulate"`
	SecretKey string `yaml:"secret_key"`
	Currency  string `yaml:"currency"`
}

// SMTPConfig contains email service settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// JWTConfig contains token settings
type JWTConfig struct {
	Secret             string `yaml:"secret"`
	AccessTokenExpiry  int    `yaml:"access_token_expiry_minutes"`
	RefreshTokenExpiry int    `yaml:"refresh_token_expiry_minutes"`
}

// StorageConfig contains vehicle photo storage settings. BaseURL is the
// address presigned links point back at.
type StorageConfig struct {
	BaseURL   string `yaml:"base_url"`
	UploadDir string `yaml:"upload_dir"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// FleetConfig contains fleet management settings. AllowHardDelete gates
// car and motorcycle deletion; bus and truck deletion is always allowed.
type FleetConfig struct {
	AllowHardDelete bool `yaml:"allow_hard_delete"`
}

// DamageConfig prices new damage found at return inspection.
type DamageConfig struct {
	ScratchCents int32 `yaml:"scratch_cents"`
	DentCents    int32 `yaml:"dent_cents"`
	RustCents    int32 `yaml:"rust_cents"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ReconcilePaidPayments    string `yaml:"reconcile_paid_payments"`
	MarkOverdueReservations  string `yaml:"mark_overdue_reservations"`
	PurgeExpiredVerification string `yaml:"purge_expired_verification"`
	PruneOrphanDocuments     string `yaml:"prune_orphan_documents"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Document store
	if val := os.Getenv("MONGO_URI"); val != "" {
		c.DocumentStore.URI = val
	}
	if val := os.Getenv("MONGO_DATABASE"); val != "" {
		c.DocumentStore.Database = val
	}

	// Gateway
	if val := os.Getenv("GATEWAY_SECRET_KEY"); val != "" {
		c.Gateway.SecretKey = val
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.DocumentStore.URI == "" {
		return fmt.Errorf("document store uri is required")
	}
	if c.DocumentStore.Database == "" {
		return fmt.Errorf("document store database is required")
	}

	if !c.Gateway.Simulate && c.Gateway.SecretKey == "" {
		return fmt.Errorf("gateway secret key is required unless simulate is on")
	}
	if c.Gateway.Currency == "" {
		c.Gateway.Currency = "usd"
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}
	if c.JWT.RefreshTokenExpiry == 0 {
		c.JWT.RefreshTokenExpiry = 7 * 24 * 60
	}

	// Document collection defaults match the names the front-end was
	// built against.
	if c.DocumentStore.HistoryCollection == "" {
		c.DocumentStore.HistoryCollection = "VehicleHistoryCollection"
	}
	if c.DocumentStore.PreConditionCollection == "" {
		c.DocumentStore.PreConditionCollection = "VehiclePreConditionCollection"
	}
	if c.DocumentStore.PostConditionCollection == "" {
		c.DocumentStore.PostConditionCollection = "VehiclePostConditionCollection"
	}
	if c.DocumentStore.RatingCollection == "" {
		c.DocumentStore.RatingCollection = "VehicleRatingCollection"
	}

	// Photo storage defaults
	if c.Storage.BaseURL == "" {
		c.Storage.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	if c.Storage.UploadDir == "" {
		c.Storage.UploadDir = "./uploads"
	}

	// Damage price defaults
	if c.Damage.ScratchCents == 0 {
		c.Damage.ScratchCents = 15000
	}
	if c.Damage.DentCents == 0 {
		c.Damage.DentCents = 30000
	}
	if c.Damage.RustCents == 0 {
		c.Damage.RustCents = 20000
	}

	// Scheduler defaults
	if c.Scheduler.ReconcilePaidPayments == "" {
		c.Scheduler.ReconcilePaidPayments = "0 */10 * * * *" // every 10 minutes
	}
	if c.Scheduler.MarkOverdueReservations == "" {
		c.Scheduler.MarkOverdueReservations = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.PurgeExpiredVerification == "" {
		c.Scheduler.PurgeExpiredVerification = "0 0 3 * * *" // 3 AM UTC
	}
	if c.Scheduler.PruneOrphanDocuments == "" {
		c.Scheduler.PruneOrphanDocuments = "0 30 3 * * 0" // Sundays 3:30 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the indexer process configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Ledger     LedgerConfig     `yaml:"ledger"`
	Retry      RetryConfig      `yaml:"retry"`
	Settings   SettingsConfig   `yaml:"settings"`
	Oracle     OracleConfig     `yaml:"oracle"`
	NATS       NATSConfig       `yaml:"nats"`
	Health     HealthConfig     `yaml:"health"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host         string        `yaml:"host" default:"0.0.0.0"`
	Port         int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout  time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"gt=0,lte=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"oracle_indexer" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// LedgerConfig contains the Soroban RPC endpoint and polling settings
type LedgerConfig struct {
	RPCURL         string        `yaml:"rpc_url" validate:"required,url"`
	ContractID     string        `yaml:"contract_id" validate:"required"`
	PollInterval   time.Duration `yaml:"poll_interval" default:"30s" validate:"gt=0"`
	Rewind         int64         `yaml:"rewind" default:"5" validate:"gte=0"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"10s" validate:"gt=0"`
	PageLimit      int           `yaml:"page_limit" default:"100" validate:"gt=0,lte=10000"`
}

// RetryConfig contains the backoff settings applied to every RPC call
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" default:"4" validate:"gte=1"`
	BaseDelay   time.Duration `yaml:"base_delay" default:"1s" validate:"gt=0"`
}

// SettingsConfig holds the defaults used when the settings row is bootstrapped
type SettingsConfig struct {
	DefaultFeePercent       string `yaml:"default_fee_percent" default:"1.0" validate:"numeric"`
	DefaultContractID       string `yaml:"default_contract_id"`
	DefaultOracleContractID string `yaml:"default_oracle_contract_id"`
}

// OracleConfig contains resolution settings. AssetDecimals is the scale of the
// oracle's i128 prices; a scaled price must fit numeric(20,8).
type OracleConfig struct {
	ContractID       string `yaml:"contract_id"`
	AssetDecimals    int32  `yaml:"asset_decimals" default:"14" validate:"gte=0,lte=38"`
	SimulationSource string `yaml:"simulation_source"`
	ResolveSchedule  string `yaml:"resolve_schedule" default:"@every 30s" validate:"required"`
	ReportThreshold  int    `yaml:"report_threshold" default:"5" validate:"gte=1"`
}

// NATSConfig contains notification publisher settings
type NATSConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url" default:"nats://127.0.0.1:4222"`
	SubjectPrefix string `yaml:"subject_prefix" default:"oracle.calls"`
	Name          string `yaml:"name" default:"oracle-indexer"`
}

// HealthConfig contains the gRPC health service settings
type HealthConfig struct {
	GRPCPort int           `yaml:"grpc_port" default:"9091" validate:"gte=0,lte=65535"`
	Interval time.Duration `yaml:"interval" default:"15s" validate:"gt=0"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" default:"30s"`
}

// Load reads the YAML file at configPath, expands ${VAR} references from the
// environment, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Config from raw YAML bytes.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

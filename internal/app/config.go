package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/testnet/internal/adapters/out/grpcapi"
	"github.com/bnema/testnet/internal/adapters/out/telemetry"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
)

// Config holds the configuration of a testsuite process.
type Config struct {
	API struct {
		Socket               string        `mapstructure:"socket"`
		MaxConnectAttempts   int           `mapstructure:"max_connect_attempts"`
		ConnectRetryInterval time.Duration `mapstructure:"connect_retry_interval"`
		CallTimeout          time.Duration `mapstructure:"call_timeout"`
	} `mapstructure:"api"`

	Suite struct {
		Params               string        `mapstructure:"params"`
		RegistrationAttempts int           `mapstructure:"registration_attempts"`
		RegistrationInterval time.Duration `mapstructure:"registration_interval"`
		ExecutionVolume      string        `mapstructure:"execution_volume"`
		PhaseGrace           time.Duration `mapstructure:"phase_grace"`
		CompensateFailures   bool          `mapstructure:"compensate_failures"`
	} `mapstructure:"suite"`

	Logging LoggingConfig `mapstructure:"logging"`

	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   struct {
		Enabled    bool   `mapstructure:"enabled"`
		Path       string `mapstructure:"path"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
	} `mapstructure:"file"`
}

// Environment variables the orchestrator sets on a testsuite container.
const (
	EnvAPISocket        = "API_SOCKET"
	EnvCustomParamsJSON = "CUSTOM_PARAMS_JSON"
	EnvLogLevel         = "LOG_LEVEL"
)

// LoadConfig reads the optional dotenv file, then the optional config file,
// then the environment. Flags bound to v afterwards take precedence.
func LoadConfig(v *viper.Viper, configPath, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v.SetDefault("api.max_connect_attempts", grpcapi.DefaultMaxConnectAttempts)
	v.SetDefault("api.connect_retry_interval", grpcapi.DefaultConnectRetryInterval)
	v.SetDefault("api.call_timeout", grpcapi.DefaultCallTimeout)
	v.SetDefault("suite.params", "{}")
	v.SetDefault("suite.registration_attempts", execution.DefaultRegistrationAttempts)
	v.SetDefault("suite.registration_interval", execution.DefaultRegistrationInterval)
	v.SetDefault("suite.execution_volume", execution.DefaultSuiteExVolMountpoint)
	v.SetDefault("suite.phase_grace", execution.DefaultPhaseGrace)
	v.SetDefault("suite.compensate_failures", true)
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.max_size", 100)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.traces", true)
	v.SetDefault("telemetry.metrics", true)
	v.SetDefault("telemetry.export_interval", telemetry.DefaultExportInterval)

	ConfigureViper(v, configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("TESTNET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range map[string]string{
		"api.socket":    EnvAPISocket,
		"suite.params":  EnvCustomParamsJSON,
		"logging.level": EnvLogLevel,
	} {
		if err := v.BindEnv(key, "TESTNET_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return nil
}

// ParseConfig decodes v into a Config and validates it.
func ParseConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the process cannot start without.
func (c Config) Validate() error {
	if c.API.Socket == "" {
		return &domain.ConfigurationError{Field: "api socket", Reason: "set --api-socket or " + EnvAPISocket}
	}
	if c.Logging.Level == "" {
		return &domain.ConfigurationError{Field: "log level", Reason: "set --log-level or " + EnvLogLevel}
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return &domain.ConfigurationError{Field: "log level", Reason: fmt.Sprintf("unknown level %q", c.Logging.Level), Cause: err}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &domain.ConfigurationError{Field: "log format", Reason: fmt.Sprintf("%q is not console or json", c.Logging.Format)}
	}
	return nil
}

// ExecutorConfig maps the process configuration onto the executor inputs.
func (c Config) ExecutorConfig() execution.ExecutorConfig {
	return execution.ExecutorConfig{
		APISocket:            c.API.Socket,
		CustomParamsJSON:     c.Suite.Params,
		LogLevel:             c.Logging.Level,
		MaxConnectAttempts:   c.API.MaxConnectAttempts,
		ConnectRetryInterval: c.API.ConnectRetryInterval,
		CallTimeout:          c.API.CallTimeout,
		RegistrationAttempts: c.Suite.RegistrationAttempts,
		RegistrationInterval: c.Suite.RegistrationInterval,
	}
}

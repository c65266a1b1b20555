package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/testnet/internal/testutils"
	"github.com/bnema/testnet/pkg/domain"
	"github.com/bnema/testnet/pkg/execution"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(EnvAPISocket, "unix:///run/orchestrator.sock")
	t.Setenv(EnvLogLevel, "debug")

	v := viper.New()
	require.NoError(t, LoadConfig(v, "", ""))
	cfg, err := ParseConfig(v)

	require.NoError(t, err)
	assert.Equal(t, "unix:///run/orchestrator.sock", cfg.API.Socket)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "{}", cfg.Suite.Params)
	assert.Equal(t, execution.DefaultSuiteExVolMountpoint, cfg.Suite.ExecutionVolume)
	assert.Equal(t, execution.DefaultPhaseGrace, cfg.Suite.PhaseGrace)
	assert.True(t, cfg.Suite.CompensateFailures)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := testutils.WriteConfigFile(t, `
[api]
socket = "localhost:9710"
call_timeout = "5s"

[suite]
params = '{"execImage": "busybox"}'
registration_attempts = 3

[logging]
level = "info"
format = "json"
`)
	t.Setenv(EnvLogLevel, "warn")

	v := viper.New()
	require.NoError(t, LoadConfig(v, path, ""))
	cfg, err := ParseConfig(v)

	require.NoError(t, err)
	assert.Equal(t, "localhost:9710", cfg.API.Socket)
	assert.Equal(t, 5*time.Second, cfg.API.CallTimeout)
	assert.Equal(t, `{"execImage": "busybox"}`, cfg.Suite.Params)
	assert.Equal(t, 3, cfg.Suite.RegistrationAttempts)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	exec := cfg.ExecutorConfig()
	assert.Equal(t, "localhost:9710", exec.APISocket)
	assert.Equal(t, 5*time.Second, exec.CallTimeout)
	assert.Equal(t, 3, exec.RegistrationAttempts)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	const key = "TESTNET_API_SOCKET"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })
	t.Setenv(EnvLogLevel, "info")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(key+"=from-env-file:1234\n"), 0o600))

	v := viper.New()
	require.NoError(t, LoadConfig(v, "", envFile))
	cfg, err := ParseConfig(v)

	require.NoError(t, err)
	assert.Equal(t, "from-env-file:1234", cfg.API.Socket)
}

func TestLoadConfig_MissingFiles(t *testing.T) {
	assert.Error(t, LoadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.toml"), ""))
	assert.Error(t, LoadConfig(viper.New(), "", filepath.Join(t.TempDir(), "absent.env")))
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		var cfg Config
		cfg.API.Socket = "localhost:9710"
		cfg.Logging.Level = "info"
		cfg.Logging.Format = "console"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "missing socket", mutate: func(c *Config) { c.API.Socket = "" }, field: "api socket"},
		{name: "missing level", mutate: func(c *Config) { c.Logging.Level = "" }, field: "log level"},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, field: "log level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, field: "log format"},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()

			var cfgErr *domain.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestNewLogger_File(t *testing.T) {
	var cfg LoggingConfig
	cfg.Level = "info"
	cfg.Format = "json"
	cfg.File.Enabled = true
	cfg.File.Path = filepath.Join(t.TempDir(), "logs", "testnet.log")
	cfg.File.MaxSize = 1

	log, cleanup, err := NewLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	log.Info().Msg("hello")
	cleanup()

	data, err := os.ReadFile(cfg.File.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

// Package cli provides the root command of a testsuite binary. A suite module
// builds its binary with:
//
//	func main() {
//		if err := cli.NewRootCmd(mysuite.NewConfigurator()).Execute(); err != nil {
//			os.Exit(1)
//		}
//	}
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnema/testnet/internal/app"
	"github.com/bnema/testnet/pkg/execution"
	"github.com/bnema/testnet/pkg/version"
)

// flagBindings maps command flags onto config keys.
var flagBindings = map[string]string{
	"api-socket": "api.socket",
	"params":     "suite.params",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// Option configures the root command.
type Option func(*options)

type options struct {
	executorOpts []execution.ExecutorOption
}

// WithExecutorOptions passes extra options to the suite executor.
func WithExecutorOptions(opts ...execution.ExecutorOption) Option {
	return func(o *options) { o.executorOpts = append(o.executorOpts, opts...) }
}

// NewRootCmd creates the root command of a testsuite binary running the
// suite configurator builds.
func NewRootCmd(configurator execution.TestSuiteConfigurator, opts ...Option) *cobra.Command {
	var configPath, envFile string
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rootCmd := &cobra.Command{
		Use:   "testnet",
		Short: "testnet - run a testsuite against a network orchestrator",
		Long: `testnet registers a testsuite with the orchestrator listening on the API
socket, then either publishes the suite metadata or runs the one test the
orchestrator asks for, reporting every lifecycle step back to it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fail := func(err error) error {
				_ = writeOutcome(cmd.ErrOrStderr(), app.Outcome{}, err)
				return err
			}

			v := viper.New()
			if err := app.LoadConfig(v, configPath, envFile); err != nil {
				return fail(err)
			}
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return fail(err)
			}
			cfg, err := app.ParseConfig(v)
			if err != nil {
				return fail(err)
			}

			log, cleanup, err := app.NewLogger(cfg.Logging)
			if err != nil {
				return fail(err)
			}
			if cleanup != nil {
				defer cleanup()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			outcome, runErr := app.Run(ctx, cfg, configurator, log, app.WithExecutorOptions(o.executorOpts...))
			if err := writeOutcome(cmd.OutOrStdout(), outcome, runErr); err != nil {
				log.Warn().Err(err).Msg("failed to write result")
			}
			return runErr
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to config file")
	flags.StringVar(&envFile, "env-file", "", "Path to a dotenv file loaded before reading the environment")
	flags.String("api-socket", "", "Orchestrator API address (env "+app.EnvAPISocket+")")
	flags.String("params", "", "Custom params JSON passed to the suite (env "+app.EnvCustomParamsJSON+")")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error (env "+app.EnvLogLevel+")")
	flags.String("log-format", "", "Log format: console or json")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// bindFlags makes changed flags take precedence over env and config file values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flag, key := range flagBindings {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return nil
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.String())
		},
	}
}

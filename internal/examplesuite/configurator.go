package examplesuite

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/testnet/internal/boundaries/out"
	"github.com/bnema/testnet/pkg/execution"
	"github.com/bnema/testnet/pkg/testsuite"
)

// Configurator builds the example suite from its custom params.
type Configurator struct {
	prober out.HTTPProber
}

var (
	_ execution.TestSuiteConfigurator = (*Configurator)(nil)
	_ execution.ParamsSchemaProvider  = (*Configurator)(nil)
)

// ConfiguratorOption configures a Configurator.
type ConfiguratorOption func(*Configurator)

// WithProber replaces the HTTP prober the web service readiness check uses.
func WithProber(p out.HTTPProber) ConfiguratorOption {
	return func(c *Configurator) { c.prober = p }
}

func NewConfigurator(opts ...ConfiguratorOption) *Configurator {
	c := &Configurator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLogLevel sets the global zerolog level.
func (c *Configurator) SetLogLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func (c *Configurator) ParseParamsAndCreateSuite(paramsJSON string) (testsuite.TestSuite, error) {
	var params Params
	if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	params.applyDefaults()
	return &Suite{params: params, prober: c.prober}, nil
}

func (c *Configurator) ParamsSchema() string { return paramsSchema }

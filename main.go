package main

import (
	"os"

	"github.com/bnema/testnet/internal/examplesuite"
	"github.com/bnema/testnet/pkg/execution/cli"
	"github.com/bnema/testnet/pkg/version"
)

var (
	buildVersion string
	commit       string
	date         string
)

func main() {
	version.Set(buildVersion, commit, date)
	if err := cli.NewRootCmd(examplesuite.NewConfigurator()).Execute(); err != nil {
		os.Exit(1)
	}
}

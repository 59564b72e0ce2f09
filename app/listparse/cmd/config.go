package cmd

import (
	"github.com/spf13/cobra"

	envconfig "github.com/ftpkit/listparse/internal/config"
)

// config holds the effective CLI configuration. Flags are bound directly to
// its fields; environment values fill in anything the flags left untouched.
var config = envconfig.Config{}

func applyEnvDefaults(cmd *cobra.Command) {
	env := envconfig.Load()
	if !cmd.Flags().Changed("dialect") {
		config.Dialect = env.Dialect
	}
	if !cmd.Flags().Changed("page") && env.PageSize > 0 {
		config.PageSize = env.PageSize
	}
	config.TelemetryEnabled = env.TelemetryEnabled
	config.OTLPEndpoint = env.OTLPEndpoint
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
)

// version is stamped at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "probectl",
	Short: "HTTP(S) service health probe",
	Long: `probectl issues HTTP or HTTPS requests against target hosts to
determine service health.

Four probe actions are available:
  - get:        one GET request per host
  - post:       one POST request per host, with an optional JSON body
  - get_ok:     poll with GET until the response passes or a deadline elapses
  - service_up: poll until the host answers with any status below 500

Hosts come from --host flags or from named target sets in the config
directory. Exit codes distinguish validation, transport, and bad-status
failures so orchestrators can react to each.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)

package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/plugin"
)

var pluginCmd = &cobra.Command{
	Use:   "plugin <action>",
	Short: "Run a probe action the way a host orchestrator would",
	Long: `Dispatch one of the registered probe actions (get, post, get_ok,
service_up) with a flat key=value argument string, mirroring how host
orchestration systems invoke the probe.

Values may be quoted so JSON bodies survive intact:

  probectl plugin post --args 'host=10.0.0.1 port=8080 data={"value":"1"}'
  probectl plugin get_ok --args "port=8080 timeout=60" --instances "10.0.0.1,10.0.0.2"

Unrecognized argument keys are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlugin,
}

var (
	pluginArgs      string
	pluginInstances string
)

func init() {
	pluginCmd.Flags().StringVar(&pluginArgs, "args", "", "Shell-quoted key=value argument string")
	pluginCmd.Flags().StringVar(&pluginInstances, "instances", "", "Comma-separated instance hosts")
	rootCmd.AddCommand(pluginCmd)
}

func runPlugin(cmd *cobra.Command, args []string) error {
	action, err := plugin.Lookup(args[0])
	if err != nil {
		return err
	}

	parsed, err := plugin.ParseArgs(pluginArgs)
	if err != nil {
		return err
	}

	var instances []string
	for _, instance := range strings.Split(pluginInstances, ",") {
		if instance = strings.TrimSpace(instance); instance != "" {
			instances = append(instances, instance)
		}
	}

	return action(context.Background(), parsed, instances)
}

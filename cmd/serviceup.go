package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/probe"
)

var serviceUpCmd = &cobra.Command{
	Use:     "service_up [host...]",
	Aliases: []string{"service-up"},
	Short:   "Poll hosts until they answer at all",
	Long: `Repeatedly issue GET requests against each host until it answers with
any status below 500 or the overall deadline elapses. Redirects are not
followed; a 3xx response counts as the service being up.

This confirms a service is answering without requiring a specific valid
resource. --ok-codes is ignored.`,
	Args: cobra.ArbitraryArgs,
	RunE: runServiceUp,
}

var serviceUpOpts probeOptions

func init() {
	addRequestFlags(serviceUpCmd, &serviceUpOpts)
	addPollFlags(serviceUpCmd, &serviceUpOpts)
	rootCmd.AddCommand(serviceUpCmd)
}

func runServiceUp(cmd *cobra.Command, args []string) error {
	serviceUpOpts.hosts = append(serviceUpOpts.hosts, args...)

	if serviceUpOpts.okCodes != "" {
		logWarning("service_up ignores --ok-codes; any status below 500 counts as up")
		serviceUpOpts.okCodes = ""
	}

	reqs, err := buildRequests(cmd, &serviceUpOpts, probe.MethodGet)
	if err != nil {
		return err
	}
	for i := range reqs {
		reqs[i].Criteria = probe.ServiceUp()
	}
	return pollAll(context.Background(), reqs, pollDeadline(cmd, &serviceUpOpts), serviceUpOpts.progress)
}

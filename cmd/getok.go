package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/probe"
)

var getOkCmd = &cobra.Command{
	Use:     "get_ok [host...]",
	Aliases: []string{"get-ok"},
	Short:   "Poll hosts with GET requests until they pass",
	Long: `Repeatedly issue GET requests against each host until the response
passes the success criteria or the overall deadline elapses. Each attempt
uses a short fixed timeout so a hanging endpoint cannot stall the poll.

The last observed failure is reported when the deadline passes. At least
one attempt is always made, even with --deadline 0.`,
	Args: cobra.ArbitraryArgs,
	RunE: runGetOk,
}

var getOkOpts probeOptions

func init() {
	addRequestFlags(getOkCmd, &getOkOpts)
	addPollFlags(getOkCmd, &getOkOpts)
	rootCmd.AddCommand(getOkCmd)
}

func runGetOk(cmd *cobra.Command, args []string) error {
	getOkOpts.hosts = append(getOkOpts.hosts, args...)

	reqs, err := buildRequests(cmd, &getOkOpts, probe.MethodGet)
	if err != nil {
		return err
	}
	return pollAll(context.Background(), reqs, pollDeadline(cmd, &getOkOpts), getOkOpts.progress)
}

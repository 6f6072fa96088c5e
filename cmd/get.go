package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/probe"
)

var getCmd = &cobra.Command{
	Use:   "get [host...]",
	Short: "Probe hosts with a single GET request",
	Long: `Issue one GET request against each host and report success when the
response passes the success criteria (2xx unless --ok-codes is given).

Hosts are probed sequentially; the first failure aborts the batch.`,
	Args: cobra.ArbitraryArgs,
	RunE: runGet,
}

var getOpts probeOptions

func init() {
	addRequestFlags(getCmd, &getOpts)
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	getOpts.hosts = append(getOpts.hosts, args...)

	reqs, err := buildRequests(cmd, &getOpts, probe.MethodGet)
	if err != nil {
		return err
	}
	return probeAll(context.Background(), reqs)
}

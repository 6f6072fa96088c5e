package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/probe"
)

var postCmd = &cobra.Command{
	Use:   "post [host...]",
	Short: "Probe hosts with a single POST request",
	Long: `Issue one POST request against each host. When --data is given the
body is sent with a Content-Type of application/json.

Hosts are probed sequentially; the first failure aborts the batch.`,
	Args: cobra.ArbitraryArgs,
	RunE: runPost,
}

var postOpts probeOptions

func init() {
	addRequestFlags(postCmd, &postOpts)
	postCmd.Flags().StringVarP(&postOpts.data, "data", "d", "", "JSON request body")
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	postOpts.hosts = append(postOpts.hosts, args...)

	reqs, err := buildRequests(cmd, &postOpts, probe.MethodPost)
	if err != nil {
		return err
	}
	return probeAll(context.Background(), reqs)
}

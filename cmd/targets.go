package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/probectl/probectl/internal/config"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List configured target sets",
	RunE:  runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, args []string) error {
	sets, err := config.ListTargetSets(paths().TargetsDir)
	if err != nil {
		return fmt.Errorf("failed to list target sets: %w", err)
	}

	if len(sets) == 0 {
		logInfo("No target sets found. Add TOML files under %s.", paths().TargetsDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSCHEMA\tPORT\tPATH\tINSTANCES")
	fmt.Fprintln(w, "----\t------\t----\t----\t---------")

	for _, set := range sets {
		schema := set.Schema
		if schema == "" {
			schema = "http"
		}

		port := "-"
		if set.Port != 0 {
			port = strconv.Itoa(set.Port)
		}

		path := set.Path
		if path == "" {
			path = "/"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			set.Name, schema, port, path, strings.Join(set.Hosts(), ","))
	}

	return w.Flush()
}

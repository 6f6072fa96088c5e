package main

import (
	"os"

	"github.com/probectl/probectl/cmd"
	"github.com/probectl/probectl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}

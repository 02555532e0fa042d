// Package main is the entry point for the mcpstack-tool CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mcpstack/tool-bootstrap/internal/cmd"
	oerrors "github.com/mcpstack/tool-bootstrap/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}

// Package cli defines the agroctl command tree. Each subcommand performs at
// most one API call and renders the result as a table, detail view, or JSON.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/ariel-frischer/agroctl/internal/errors"
	"github.com/ariel-frischer/agroctl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "agroctl",
	Short: "CLI client for the AgroVault agricultural data API",
	Long: `agroctl queries the AgroVault agricultural data API from the command line.

Fields, farms, boundaries, and harvest/planting activity summaries are
exposed as subcommands with table or JSON output. Authentication uses the
API key from 'agroctl config set api_key <key>' (or AGROCTL_API_KEY).`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.BuildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Every handled failure is printed with its
// category and remediation; the caller exits nonzero on error.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	cliErr := apperrors.AsCLIError(err)
	if cliErr == nil {
		cliErr = apperrors.FromAPI(err)
	}
	apperrors.PrintError(cliErr)
	return err
}

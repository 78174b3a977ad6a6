package cli

import (
	"context"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ariel-frischer/agroctl/internal/api"
	"github.com/ariel-frischer/agroctl/internal/config"
	apperrors "github.com/ariel-frischer/agroctl/internal/errors"
	"github.com/ariel-frischer/agroctl/internal/render"
)

// listCall and getCall bind a subcommand to one API client operation.
type listCall func(ctx context.Context, client *api.Client, limit int) (interface{}, error)
type getCall func(ctx context.Context, client *api.Client, id string) (interface{}, error)

// apiClient loads configuration and creates an authenticated client.
// This is the one path every authenticated command goes through; it fails
// before any network call when no API key is configured.
func apiClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, apperrors.WrapWithMessage(err, apperrors.Configuration, "loading config")
	}
	if !cfg.IsConfigured() {
		return nil, apperrors.NotConfigured()
	}
	return api.NewClient(cfg.BaseURL, cfg.APIKey, time.Duration(cfg.Timeout)*time.Second), nil
}

// runList performs one list round trip and renders the extracted records.
func runList(cmd *cobra.Command, call listCall, columns []render.Column) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOut, _ := cmd.Flags().GetBool("json")

	client, err := apiClient()
	if err != nil {
		return err
	}

	body, err := fetch(cmd, jsonOut, func(ctx context.Context) (interface{}, error) {
		return call(ctx, client, limit)
	})
	if err != nil {
		return err
	}

	records := api.Records(body)
	out := cmd.OutOrStdout()
	if jsonOut {
		return render.JSON(out, records)
	}
	render.Table(out, columns, records)
	return nil
}

// runGet performs one get round trip and renders a detail view, or the raw
// body in JSON mode.
func runGet(cmd *cobra.Command, id string, call getCall, columns []render.Column) error {
	jsonOut, _ := cmd.Flags().GetBool("json")

	client, err := apiClient()
	if err != nil {
		return err
	}

	body, err := fetch(cmd, jsonOut, func(ctx context.Context) (interface{}, error) {
		return call(ctx, client, id)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return render.JSON(out, body)
	}
	records := api.Records(body)
	if len(records) == 0 {
		render.Table(out, columns, nil)
		return nil
	}
	render.Detail(out, columns, records[0])
	return nil
}

// fetch runs one API call with a spinner while the request is in flight.
// The spinner is suppressed in JSON mode, when stdout is not a terminal, or
// when NO_COLOR is set, so piped output stays clean.
func fetch(cmd *cobra.Command, jsonMode bool, call func(context.Context) (interface{}, error)) (interface{}, error) {
	s := startSpinner(jsonMode)
	defer stopSpinner(s)
	return call(cmd.Context())
}

func startSpinner(jsonMode bool) *spinner.Spinner {
	if jsonMode || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " fetching..."
	s.Start()
	return s
}

func stopSpinner(s *spinner.Spinner) {
	if s != nil {
		s.Stop()
	}
}

// addListFlags registers the flags shared by every list subcommand.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", api.DefaultLimit, "maximum number of records to fetch")
	cmd.Flags().Bool("json", false, "output raw JSON instead of a table")
}

// addJSONFlag registers the flag shared by every get/create subcommand.
func addJSONFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "output raw JSON")
}

// requireIDArg validates the single positional id argument.
func requireIDArg(usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return apperrors.MissingID(usage)
		}
		return nil
	}
}

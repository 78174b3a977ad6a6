package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agroctl/internal/api"
	"github.com/ariel-frischer/agroctl/internal/render"
)

var boundaryColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "fieldId", Label: "Field"},
	{Key: "acres", Label: "Acres", Format: formatNumber},
	{Key: "status", Label: "Status"},
}

var boundaryDetailColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "fieldId", Label: "Field"},
	{Key: "acres", Label: "Acres", Format: formatNumber},
	{Key: "status", Label: "Status"},
	{Key: "createdTime", Label: "Created"},
}

var boundariesCmd = &cobra.Command{
	Use:   "boundaries",
	Short: "Query field boundaries",
	Long:  "Query field boundaries (GeoJSON polygons describing a field's physical extent).",
}

var boundariesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List boundaries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, func(ctx context.Context, c *api.Client, limit int) (interface{}, error) {
			return c.ListBoundaries(ctx, limit)
		}, boundaryColumns)
	},
}

var boundariesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single boundary",
	Args:  requireIDArg("agroctl boundaries get <id>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, c *api.Client, id string) (interface{}, error) {
			return c.GetBoundary(ctx, id)
		}, boundaryDetailColumns)
	},
}

func init() {
	addListFlags(boundariesListCmd)
	addJSONFlag(boundariesGetCmd)
	boundariesCmd.AddCommand(boundariesListCmd, boundariesGetCmd)
	rootCmd.AddCommand(boundariesCmd)
}

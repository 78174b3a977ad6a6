package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agroctl/internal/api"
	"github.com/ariel-frischer/agroctl/internal/render"
)

var farmColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
}

var farmDetailColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "createdTime", Label: "Created"},
}

var farmsCmd = &cobra.Command{
	Use:   "farms",
	Short: "Query farms",
}

var farmsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List farms",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, func(ctx context.Context, c *api.Client, limit int) (interface{}, error) {
			return c.ListFarms(ctx, limit)
		}, farmColumns)
	},
}

var farmsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single farm",
	Args:  requireIDArg("agroctl farms get <id>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, c *api.Client, id string) (interface{}, error) {
			return c.GetFarm(ctx, id)
		}, farmDetailColumns)
	},
}

func init() {
	addListFlags(farmsListCmd)
	addJSONFlag(farmsGetCmd)
	farmsCmd.AddCommand(farmsListCmd, farmsGetCmd)
	rootCmd.AddCommand(farmsCmd)
}

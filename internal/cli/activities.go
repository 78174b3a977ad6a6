package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agroctl/internal/api"
	"github.com/ariel-frischer/agroctl/internal/render"
)

// Harvest and planting share the activity-summary record shape, so both
// command groups reuse the same columns.
var activityColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "crop", Label: "Crop"},
	{Key: "totalArea", Label: "Area", Format: formatNumber},
	{Key: "startTime", Label: "Start"},
	{Key: "endTime", Label: "End"},
}

var activityDetailColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "crop", Label: "Crop"},
	{Key: "fieldId", Label: "Field"},
	{Key: "totalArea", Label: "Area", Format: formatNumber},
	{Key: "startTime", Label: "Start"},
	{Key: "endTime", Label: "End"},
}

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Query harvest activity summaries",
}

var harvestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List harvest activities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, func(ctx context.Context, c *api.Client, limit int) (interface{}, error) {
			return c.ListHarvestActivities(ctx, limit)
		}, activityColumns)
	},
}

var harvestGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single harvest activity",
	Args:  requireIDArg("agroctl harvest get <id>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, c *api.Client, id string) (interface{}, error) {
			return c.GetHarvestActivity(ctx, id)
		}, activityDetailColumns)
	},
}

var plantingCmd = &cobra.Command{
	Use:   "planting",
	Short: "Query planting activity summaries",
}

var plantingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List planting activities",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, func(ctx context.Context, c *api.Client, limit int) (interface{}, error) {
			return c.ListPlantingActivities(ctx, limit)
		}, activityColumns)
	},
}

var plantingGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single planting activity",
	Args:  requireIDArg("agroctl planting get <id>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, c *api.Client, id string) (interface{}, error) {
			return c.GetPlantingActivity(ctx, id)
		}, activityDetailColumns)
	},
}

func init() {
	addListFlags(harvestListCmd)
	addJSONFlag(harvestGetCmd)
	harvestCmd.AddCommand(harvestListCmd, harvestGetCmd)
	rootCmd.AddCommand(harvestCmd)

	addListFlags(plantingListCmd)
	addJSONFlag(plantingGetCmd)
	plantingCmd.AddCommand(plantingListCmd, plantingGetCmd)
	rootCmd.AddCommand(plantingCmd)
}

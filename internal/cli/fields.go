package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/agroctl/internal/api"
	apperrors "github.com/ariel-frischer/agroctl/internal/errors"
	"github.com/ariel-frischer/agroctl/internal/render"
)

var fieldColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "farmId", Label: "Farm"},
	{Key: "acres", Label: "Acres", Format: formatNumber},
}

var fieldDetailColumns = []render.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "farmId", Label: "Farm"},
	{Key: "acres", Label: "Acres", Format: formatNumber},
	{Key: "status", Label: "Status"},
	{Key: "createdTime", Label: "Created"},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Manage fields",
}

var fieldsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, func(ctx context.Context, c *api.Client, limit int) (interface{}, error) {
			return c.ListFields(ctx, limit)
		}, fieldColumns)
	},
}

var fieldsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single field",
	Args:  requireIDArg("agroctl fields get <id>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(cmd, args[0], func(ctx context.Context, c *api.Client, id string) (interface{}, error) {
			return c.GetField(ctx, id)
		}, fieldDetailColumns)
	},
}

var fieldsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a field",
	Example: `  agroctl fields create --name "North Field" --acres 120.5`,
	RunE:    runFieldsCreate,
}

func runFieldsCreate(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("name")
	acres, _ := cmd.Flags().GetFloat64("acres")
	boundary, _ := cmd.Flags().GetString("boundary")
	jsonOut, _ := cmd.Flags().GetBool("json")

	if name == "" {
		return apperrors.NewArgumentError(
			"field name is required",
			`Pass it with --name, e.g. agroctl fields create --name "North Field"`,
		)
	}

	client, err := apiClient()
	if err != nil {
		return err
	}

	req := api.CreateFieldRequest{Name: name, Acres: acres}
	if boundary != "" {
		req.Boundary = boundary
	}

	body, err := fetch(cmd, jsonOut, func(ctx context.Context) (interface{}, error) {
		return client.CreateField(ctx, req)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return render.JSON(out, body)
	}

	records := api.Records(body)
	created := map[string]interface{}{}
	if len(records) > 0 && records[0] != nil {
		created = records[0]
	}
	fmt.Fprintf(out, "Field created: %s\n", stringField(created, "name", name))
	fmt.Fprintf(out, "Field ID:  %s\n", stringField(created, "id", ""))
	return nil
}

// stringField reads a string value from a record, with a fallback.
func stringField(record map[string]interface{}, key, fallback string) string {
	if v, ok := record[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// formatNumber renders JSON numbers without the %v float noise.
func formatNumber(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

func init() {
	addListFlags(fieldsListCmd)
	addJSONFlag(fieldsGetCmd)

	fieldsCreateCmd.Flags().String("name", "", "field name (required)")
	fieldsCreateCmd.Flags().Float64("acres", 0, "field size in acres")
	fieldsCreateCmd.Flags().String("boundary", "", "GeoJSON boundary for the field")
	addJSONFlag(fieldsCreateCmd)

	fieldsCmd.AddCommand(fieldsListCmd, fieldsGetCmd, fieldsCreateCmd)
	rootCmd.AddCommand(fieldsCmd)
}

package cmd

import (
	"country-catalog/feature/countries/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunRefresh bool

// refreshCmd runs one refresh pass.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the catalog from the upstream sources",
	Long: `Fetches countries and exchange rates, upserts every country, updates the metadata row
and renders the summary image.

Examples:
  # Refresh and print the result as a table
  refresh

  # Report what would be inserted or updated without writing
  refresh --dry-run -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if err := a.prepare(ctx); err != nil {
			return err
		}

		result, err := a.countries().Service().Refresh(ctx, reconcile.Options{DryRun: dryRunRefresh})
		if err != nil {
			return err
		}
		if result.DryRun {
			a.logger.Info("Dry-run mode: No changes were made.", zap.Int("planned", len(result.Actions)))
		}
		return render(cmd, cmd.OutOrStdout(), refreshView{result})
	},
}

func init() {
	refreshCmd.Flags().BoolVar(&dryRunRefresh, "dry-run", false, "Fetch and plan without writing the catalog, metadata or image")
	addOutputFlag(refreshCmd)
	RootCmd.AddCommand(refreshCmd)
}

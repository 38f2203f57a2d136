package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates the catalog schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the catalog tables and seed the metadata row",
	Long: `Creates the countries and app_metadata tables with their indexes and inserts the
singleton metadata row when it is missing. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if err := a.migrate(ctx); err != nil {
			return err
		}
		a.logger.Info("Migration complete", zap.String("driver", a.cfg.Database.Driver))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

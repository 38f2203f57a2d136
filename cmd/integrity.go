package cmd

import (
	"country-catalog/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalog database and image storage",
	Long:  `Checks that the catalog tables match the models and that the summary image backend is reachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := integrityService()
		if err != nil {
			return err
		}
		defer done()

		schema, err := svc.CheckSchema(cmd.Context())
		if err != nil {
			return err
		}
		if err := render(cmd, cmd.OutOrStdout(), schemaView{schema}); err != nil {
			return err
		}
		storageReport, err := svc.CheckStorage(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, cmd.OutOrStdout(), storageView{storageReport})
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and fix the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, done, err := integrityService()
		if err != nil {
			return err
		}
		defer done()

		if fixFlag {
			if err := svc.FixSchema(ctx); err != nil {
				return err
			}
		}
		report, err := svc.CheckSchema(ctx)
		if err != nil {
			return err
		}
		return render(cmd, cmd.OutOrStdout(), schemaView{report})
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the summary image bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svc, done, err := integrityService()
		if err != nil {
			return err
		}
		defer done()

		if fixFlag {
			if err := svc.FixStorage(ctx); err != nil {
				return err
			}
		}
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return err
		}
		return render(cmd, cmd.OutOrStdout(), storageView{report})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, storageCmd)

	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing tables, columns and the metadata row")
	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket")
	for _, c := range []*cobra.Command{integrityCmd, schemaCmd, storageCmd} {
		addOutputFlag(c)
	}
}

func integrityService() (*integrity.Service, func(), error) {
	a, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("Running integrity checks", zap.String("storage_driver", a.cfg.Storage.Driver))
	svc := integrity.NewService(a.client, a.cfg.Storage, a.sink, a.logger, a.db)
	return svc, func() { _ = a.logger.Sync() }, nil
}

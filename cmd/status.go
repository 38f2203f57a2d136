package cmd

import (
	"github.com/spf13/cobra"
)

// statusCmd prints the metadata row.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the catalog size and last refresh time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		meta, err := a.countries().Service().Status(ctx)
		if err != nil {
			return err
		}
		return render(cmd, cmd.OutOrStdout(), statusView{
			TotalCountries:  meta.TotalCountries,
			LastRefreshedAt: meta.LastRefreshedAt,
		})
	},
}

func init() {
	addOutputFlag(statusCmd)
	RootCmd.AddCommand(statusCmd)
}

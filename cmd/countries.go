package cmd

import (
	"fmt"

	"country-catalog/feature/countries/models"

	"github.com/spf13/cobra"
)

var (
	// Flags for countries list
	regionFilter   string
	currencyFilter string
	sortOrder      string
)

// countriesCmd is the parent command for catalog queries.
var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Query and edit the country catalog",
}

var countriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List countries",
	Long: `Lists catalog rows, optionally filtered by exact region and currency code.

Sort keys: gdp_desc, gdp_asc, name_asc, name_desc.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sort, err := models.ParseSort(sortOrder)
		if err != nil {
			return err
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		rows, err := a.countries().Service().List(ctx, models.Filter{Region: regionFilter, Currency: currencyFilter}, sort)
		if err != nil {
			return err
		}
		return render(cmd, cmd.OutOrStdout(), countryRows(rows))
	},
}

var countriesGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one country (case-insensitive)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		country, err := a.countries().Service().Get(ctx, args[0])
		if err != nil {
			return err
		}
		return render(cmd, cmd.OutOrStdout(), countryRows{*country})
	},
}

var countriesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete one country (case-insensitive)",
	Long:  `Deletes a catalog row. The metadata row and summary image are left as they are until the next refresh.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if err := a.countries().Service().Delete(ctx, args[0]); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Country %q deleted\n", args[0])
		return err
	},
}

func init() {
	countriesListCmd.Flags().StringVar(&regionFilter, "region", "", "Exact region filter (e.g. Africa)")
	countriesListCmd.Flags().StringVar(&currencyFilter, "currency", "", "Exact currency code filter (e.g. NGN)")
	countriesListCmd.Flags().StringVar(&sortOrder, "sort", "", "Sort order: gdp_desc, gdp_asc, name_asc, name_desc")
	addOutputFlag(countriesListCmd)
	addOutputFlag(countriesGetCmd)

	countriesCmd.AddCommand(countriesListCmd, countriesGetCmd, countriesDeleteCmd)
	RootCmd.AddCommand(countriesCmd)
}

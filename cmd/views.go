package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"country-catalog/core/output"
	"country-catalog/core/utils"
	"country-catalog/feature/countries/models"
	"country-catalog/feature/countries/reconcile"
	"country-catalog/feature/countries/summary"
	"country-catalog/feature/integrity/checks"

	"github.com/spf13/cobra"
)

const missing = "-"

// countryRows renders catalog rows as a table.
type countryRows []models.Country

func (rows countryRows) TableData() output.Data {
	data := output.Data{
		Headers: output.Headers("name", "capital", "region", "population", "currency", "exchange_rate", "estimated_gdp"),
		ColumnAlignment: []output.Align{
			output.AlignLeft, output.AlignLeft, output.AlignLeft,
			output.AlignRight, output.AlignLeft, output.AlignRight, output.AlignRight,
		},
	}
	for _, c := range rows {
		gdp := missing
		if c.HasGDP() {
			gdp = summary.FormatUSD(*c.EstimatedGDP)
		}
		data.Rows = append(data.Rows, []string{
			c.Name,
			utils.StringOr(c.Capital, missing),
			utils.StringOr(c.Region, missing),
			strconv.FormatInt(c.Population, 10),
			utils.StringOr(c.CurrencyCode, missing),
			utils.FloatOr(c.ExchangeRate, 6, missing),
			gdp,
		})
	}
	return data
}

// refreshView renders a refresh result as a key/value table.
type refreshView struct {
	*reconcile.Result
}

func (v refreshView) TableData() output.Data {
	return keyValues(
		[2]string{"Processed", strconv.Itoa(v.Processed)},
		[2]string{"Inserted", strconv.Itoa(v.Inserted)},
		[2]string{"Updated", strconv.Itoa(v.Updated)},
		[2]string{"Dry Run", strconv.FormatBool(v.DryRun)},
		[2]string{"Refreshed At", timestamp(&v.RefreshedAt)},
	)
}

// statusView renders the metadata row.
type statusView struct {
	TotalCountries  int        `json:"total_countries" yaml:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at" yaml:"last_refreshed_at"`
}

func (v statusView) TableData() output.Data {
	return keyValues(
		[2]string{"Total Countries", strconv.Itoa(v.TotalCountries)},
		[2]string{"Last Refreshed At", timestamp(v.LastRefreshedAt)},
	)
}

// schemaView renders a schema report, one row per table.
type schemaView struct {
	*checks.SchemaReport
}

func (v schemaView) TableData() output.Data {
	data := output.Data{Headers: output.Headers("table", "status", "missing_columns", "type_mismatches")}
	for name, t := range v.Tables {
		data.Rows = append(data.Rows, []string{
			name,
			t.Status,
			strconv.Itoa(len(t.MissingColumns)),
			strconv.Itoa(len(t.TypeMismatches)),
		})
	}
	data.Rows = append(data.Rows, []string{"metadata row", presence(v.MetadataRow), missing, missing})
	return data
}

// storageView renders a storage report.
type storageView struct {
	*checks.StorageReport
}

func (v storageView) TableData() output.Data {
	bucket := missing
	if v.BucketExists != nil {
		bucket = presence(*v.BucketExists)
	}
	return keyValues(
		[2]string{"Driver", v.Driver},
		[2]string{"Bucket", utils.StringOr(&v.Bucket, missing)},
		[2]string{"Bucket Exists", bucket},
		[2]string{"Summary Image", presence(v.SummaryExists)},
	)
}

func keyValues(pairs ...[2]string) output.Data {
	data := output.Data{Headers: output.Headers("field", "value")}
	for _, p := range pairs {
		data.Rows = append(data.Rows, []string{p[0], p[1]})
	}
	return data
}

func timestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "never"
	}
	return t.UTC().Format(time.RFC3339)
}

func presence(ok bool) string {
	if ok {
		return "ok"
	}
	return "missing"
}

// addOutputFlag registers the shared -o/--output flag.
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output format: table, json or yaml (default: table on a terminal, json otherwise)")
}

// render writes data in the format selected by the --output flag.
func render(cmd *cobra.Command, w io.Writer, data any) error {
	raw, _ := cmd.Flags().GetString("output")
	format, err := output.ParseFormat(raw)
	if err != nil {
		return err
	}
	if err := output.NewFormatter(output.DetectFormat(string(format))).Format(w, data); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

package checks

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"country-catalog/core/database"
	"country-catalog/feature/countries/models"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema integrity check.
type SchemaReport struct {
	Driver      string                 `json:"driver"`
	Matched     bool                   `json:"matched"`
	MetadataRow bool                   `json:"metadata_row"`
	Tables      map[string]TableReport `json:"tables"`
	Errors      []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// catalogModels are the tables the catalog needs.
var catalogModels = []any{models.Country{}, models.Metadata{}}

// CheckSchema verifies the database schema using the GORM models as the source of truth,
// and that the singleton metadata row exists.
func CheckSchema(ctx context.Context, db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, errors.New("database connection is nil")
	}

	report := &SchemaReport{
		Driver:  db.Dialector.Name(),
		Tables:  make(map[string]TableReport),
		Matched: true,
		Errors:  []string{},
	}

	for _, model := range catalogModels {
		tableName, tblReport, err := checkTable(db, model)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			report.Matched = false
			continue
		}
		if tblReport.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tblReport
	}

	var count int64
	err := db.WithContext(ctx).Model(&models.Metadata{}).Where("id = ?", models.MetadataID).Count(&count).Error
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to read metadata row: %v", err))
		report.Matched = false
	}
	report.MetadataRow = count == 1
	if !report.MetadataRow {
		report.Matched = false
	}

	return report, nil
}

func checkTable(db *gorm.DB, model any) (string, TableReport, error) {
	typ := reflect.TypeOf(model)
	tabler, ok := reflect.New(typ).Interface().(interface{ TableName() string })
	if !ok {
		return "", TableReport{}, fmt.Errorf("model %s does not implement TableName", typ.Name())
	}
	tableName := tabler.TableName()

	tblReport := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		return "", tblReport, fmt.Errorf("failed to inspect table %s: %w", tableName, err)
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	// Postgres reports generic type names (numeric, character varying); only existence is checked there.
	checkTypes := db.Dialector.Name() != database.DriverPostgres

	for i := 0; i < typ.NumField(); i++ {
		gormTag := typ.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
			tblReport.Status = "error"
			continue
		}

		expType := strings.ToLower(parseGormType(gormTag))
		if checkTypes && expType != "" && !strings.Contains(actCol.Type, expType) {
			mismatch := fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type)
			tblReport.TypeMismatches = append(tblReport.TypeMismatches, mismatch)
			tblReport.Status = "error"
		}
	}

	return tableName, tblReport, nil
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	return gormTagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return gormTagValue(tag, "type:")
}

func gormTagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}

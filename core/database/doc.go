// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure connections for the three
// supported catalog backends: MySQL (production default), PostgreSQL, and
// SQLite (local runs and tests, including ":memory:").
//
// # Connect
//
// Connect builds the driver-specific DSN, applies pool settings and verifies
// the connection with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for the integrity feature, which
// compares them with the gorm tags of the catalog models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "countries")
package database

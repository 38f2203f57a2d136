// Package config provides configuration management for the country catalog.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults live next to each section in `default`
// struct tags and are registered by reflection.
//
// # Configuration Structure
//
//   - Server: HTTP port and optional API key
//   - Database: catalog driver (mysql, sqlite, postgres) and connection details
//   - Storage: where the summary image goes (local directory or S3/MinIO bucket)
//   - Sources: upstream countries and exchange-rate URLs, fetch timeout
//   - Scheduler: periodic refresh interval
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sources.CountriesURL)
package config

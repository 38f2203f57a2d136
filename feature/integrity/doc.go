// Package integrity provides system health checks for the catalog service.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database schema matches the catalog models (columns, types) and that the metadata row exists.
//   - Storage: Checks that the artifact bucket exists (S3 driver) and whether a summary image has been stored.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs schema check (supports ?fix=true to migrate).
//   - GET /integrity/storage : Runs storage check (supports ?fix=true to create the bucket).
package integrity

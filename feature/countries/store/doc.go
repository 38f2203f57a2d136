// Package store implements the catalog and metadata stores on top of gorm.
//
// Country names are matched with LOWER(name) = LOWER(?) for lookups, updates and
// deletes; the stored casing is the one written by the first insert. Every insert
// and update stamps last_refreshed_at with the store clock (UTC).
//
// The metadata table holds exactly one row (id = 1). Migrate seeds it and
// UpdateMetadata upserts it.
package store

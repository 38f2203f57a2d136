// Package models contains the persisted and transient data structures of the
// country catalog: the Country and Metadata tables, the raw upstream records and
// the listing query types.
package models

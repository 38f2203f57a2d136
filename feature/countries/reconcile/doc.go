// Package reconcile runs the country refresh pass.
//
// A pass fetches the country list and the exchange rates concurrently, derives
// a catalog record per country (currency code, rate and estimated GDP), upserts
// each record by case-insensitive name through the core reconcile engine and
// finally records the processed count in the metadata row.
//
// The estimated GDP is population * m / rate with m drawn uniformly from
// [1000, 2000) for every country on every pass, so it changes between passes
// even when the upstream data does not.
package reconcile

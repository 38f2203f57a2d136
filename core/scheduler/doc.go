// Package scheduler runs the catalog refresh periodically.
//
// It wraps gocron: one job per name, singleton mode so a slow pass is never
// overlapped by the next tick, and a timeout per run. A zero interval
// disables scheduling entirely and Start returns ErrDisabled.
package scheduler

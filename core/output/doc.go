// Package output provides formatters for command output.
//
// Commands pick a Format (table, json or yaml) from the -o flag, or let
// DetectFormat choose table for terminals and JSON for pipes.
package output

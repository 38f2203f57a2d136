// Package utils provides small helpers shared by the country catalog:
// pointer construction and nil-aware formatting for optional columns.
package utils

// Package sources fetches the two upstream datasets of a refresh: the country
// list and the exchange rate table.
//
// Each fetch is bounded by Config.TimeoutSeconds. Transport errors, non-2xx
// statuses, timeouts and undecodable bodies all surface as
// errors.SourceUnavailableError carrying the upstream name and the message
// shown to API callers.
package sources

// Package errors defines the error taxonomy shared by the catalog, the
// reconciliation engine and the HTTP layer.
//
// Every typed error maps onto one sentinel through an Is method, so callers
// classify failures with the standard errors.Is:
//
//	if errors.Is(err, apperrors.ErrSourceUnavailable) {
//	    // 503
//	}
//
// # Classes
//
//   - SourceUnavailableError: an upstream fetch failed or timed out.
//   - NotFoundError: a lookup, delete or artifact retrieval targeted nothing.
//   - InternalError: a storage-layer fault (connectivity, constraint violation).
//   - ValidationError: caller supplied an unsupported value (e.g. sort key).
package errors

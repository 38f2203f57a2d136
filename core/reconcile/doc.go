// Package reconcile provides a generic upsert engine that brings a store in
// line with a freshly fetched list of entities.
//
// # Architecture
//
// 1. Adapter: model-specific implementation defining how items are keyed and
//    how they are looked up, inserted and updated.
//
// 2. Sync: walks the items in order, classifies each as insert or update with a
//    point lookup, and writes it immediately. There is no batching and no rollback:
//    every write is its own commit, so a failure leaves earlier writes in place and
//    a retry of the whole pass is safe because upserts are idempotent per key.
//
// # Dry Run
//
// With Options.DryRun the engine performs the lookups and reports the actions
// it would take without calling Insert or Update.
//
// # Usage Example
//
//	result, err := reconcile.Sync(ctx, countryAdapter, records, reconcile.Options{})
//	fmt.Println(result.Processed, result.Inserted, result.Updated)
package reconcile

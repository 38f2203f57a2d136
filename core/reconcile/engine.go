package reconcile

import (
	"context"
	"fmt"
)

// Sync upserts items one by one through the adapter.
// Each write is committed independently: when an item fails, Sync stops and returns
// the partial Result together with the error, and earlier writes stay in place.
// Items sharing a key within one call are applied in order, so the last one wins.
func Sync[T any](ctx context.Context, adapter Adapter[T], items []T, opts Options) (*Result, error) {
	result := &Result{
		DryRun:  opts.DryRun,
		Actions: make([]Action, 0, len(items)),
	}

	// Keys written (or planned) in this pass, so dry-run predicts updates for repeats.
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		key := adapter.Key(item)

		_, exists := seen[key]
		if !exists {
			found, err := adapter.Exists(ctx, key)
			if err != nil {
				return result, fmt.Errorf("failed to look up %s %s: %w", adapter.Name(), key, err)
			}
			exists = found
		}

		action := Action{Type: ActionInsert, Key: key}
		if exists {
			action.Type = ActionUpdate
		}

		if !opts.DryRun {
			if err := apply(ctx, adapter, action, item); err != nil {
				return result, err
			}
		}

		seen[key] = struct{}{}
		result.record(action)
	}

	return result, nil
}

func apply[T any](ctx context.Context, adapter Adapter[T], action Action, item T) error {
	switch action.Type {
	case ActionUpdate:
		if err := adapter.Update(ctx, action.Key, item); err != nil {
			return fmt.Errorf("failed to update %s %s: %w", adapter.Name(), action.Key, err)
		}
	case ActionInsert:
		if err := adapter.Insert(ctx, item); err != nil {
			return fmt.Errorf("failed to insert %s %s: %w", adapter.Name(), action.Key, err)
		}
	}
	return nil
}

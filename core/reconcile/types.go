package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionInsert creates a record that the store does not know yet.
	ActionInsert ActionType = "insert"
	// ActionUpdate overwrites an existing record in place.
	ActionUpdate ActionType = "update"
)

// Action represents one executed (or, in dry-run, planned) mutation.
type Action struct {
	// Type specifies the action.
	Type ActionType `json:"type" yaml:"type"`

	// Key is the entity identifier as produced by Adapter.Key.
	Key string `json:"key" yaml:"key"`
}

// Options controls sync behavior.
type Options struct {
	// DryRun performs lookups and reports actions without writing anything.
	DryRun bool
}

// Result summarizes a sync pass.
type Result struct {
	// Processed counts items handled, whether inserted or updated.
	Processed int `json:"processed" yaml:"processed"`

	// Inserted counts insert actions.
	Inserted int `json:"inserted" yaml:"inserted"`

	// Updated counts update actions.
	Updated int `json:"updated" yaml:"updated"`

	// DryRun is true when no mutation was executed.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// Actions lists every action in processing order.
	Actions []Action `json:"actions" yaml:"actions"`
}

func (r *Result) record(action Action) {
	r.Actions = append(r.Actions, action)
	r.Processed++
	switch action.Type {
	case ActionInsert:
		r.Inserted++
	case ActionUpdate:
		r.Updated++
	}
}

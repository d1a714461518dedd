package reconcile

// ActionKind is the type of mutation applied to the store.
type ActionKind string

const (
	// ActionCreate creates a directory node.
	ActionCreate ActionKind = "create"
	// ActionUpdate applies a patch to an entity.
	ActionUpdate ActionKind = "update"
	// ActionDelete deletes an emptied directory node.
	ActionDelete ActionKind = "delete"
)

// Action is one mutation applied during a reconciliation.
// A delete is listed only when the store actually removed the node. A
// simulated run always lists it, so a preview can show a delete the live run
// omits when the node disappears concurrently.
type Action struct {
	// ID is the id of the mutated entity.
	ID string `json:"id"`

	// Kind is the mutation type.
	Kind ActionKind `json:"kind"`

	// Data is the body sent to the store: the full entity for a create,
	// the patch for an update and an empty object for a delete.
	Data any `json:"data"`
}

// Result is the outcome of reconciling a single entity.
type Result struct {
	// ID is the reconciled entity id.
	ID string `json:"id"`

	// Region is the address region used to derive the target ids.
	Region string `json:"region"`

	// City is the address city used to derive the target ids.
	City string `json:"city"`

	// Applied lists every mutation performed, in application order.
	Applied []Action `json:"applied"`
}

// Changed reports whether the reconciliation applied any mutation.
func (r *Result) Changed() bool {
	return len(r.Applied) > 0
}

// Options controls a single reconciliation.
type Options struct {
	// Simulate routes every mutation to an in-memory simulation.
	// Reads still hit the live store.
	Simulate bool
}

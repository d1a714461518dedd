// Package reconcile keeps a location's position in the directory hierarchy
// (root → region → city → location) in step with its address.
//
// Given a single entity id, the Engine computes and applies the minimal
// sequence of create/update/delete operations that moves the entity under the
// city node implied by its address, lazily materializing the city and region
// nodes it needs and deleting the ones it leaves empty.
//
// # Ordering
//
// All store calls are issued one after another. Ancestors are always created
// before their descendants. Every childRefs list written by the engine is sorted ascending
// and free of duplicates, which makes repeated reconciliation idempotent: an
// entity that is already in place yields an empty Result.Applied.
//
// # Failure
//
// The first failing store call aborts the run and is returned unchanged
// (wrapped with context). No rollback is attempted; re-running the same
// reconciliation completes whatever was left undone.
//
// # Dry run
//
// With Options.Simulate set, mutating calls are routed to Simulated, which
// answers them in memory, while reads still go to the live store. The returned
// Result then previews the actions a real run would apply.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(client, cfg.Directory, logger)
//	result, err := engine.Reconcile(ctx, "loc1", reconcile.Options{})
//	for _, action := range result.Applied {
//	    fmt.Println(action.Kind, action.ID)
//	}
package reconcile

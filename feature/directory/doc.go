// Package directory exposes the location directory over HTTP.
//
// It receives entity change events from the knowledge store webhook and hands
// the changed entity to the reconciliation engine, which moves it into the
// region and city node derived from its address.
//
// # Routes
//
//   - POST /webhook/entities: reconciles CREATE_ENTITY and UPDATE_ENTITY events.
//   - POST /directory/reconcile/:id: reconciles one entity on demand.
//   - GET /health: liveness probe.
//
// Both reconcile routes accept ?dry_run=true to preview the mutations.
//
// # Error Mapping
//
// A missing entity maps to 404, a knowledge store failure to 502 and every
// other failure, including a missing directory root, to 500. A non-2xx
// response makes the event source redeliver, and a repeated reconciliation
// completes whatever the failed one left undone.
package directory

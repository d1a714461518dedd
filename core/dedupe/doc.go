// Package dedupe remembers which webhook deliveries have already been
// reconciled, so a redelivered event can be acknowledged without touching the
// knowledge store again.
//
// An event is only marked after it completed successfully; failed deliveries
// are never remembered and are reconciled again when the event source retries.
// With no Redis address configured, Open returns Noop and every delivery is
// processed.
package dedupe

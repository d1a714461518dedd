// Package audit records the mutations applied by reconciliations.
//
// Two sinks are provided: DBRecorder stores one row per action in the
// directory_audit table, StorageRecorder uploads the whole result as a JSON
// object under audit/<entityId>/<unix-nanos>.json. Noop is used when auditing
// is disabled.
package audit

package audit

import (
	"context"

	"location-directory/core/reconcile"
)

// Recorder persists the mutations of a reconciliation.
type Recorder interface {
	Record(ctx context.Context, result *reconcile.Result) error
}

// Noop discards every result.
type Noop struct{}

func (Noop) Record(context.Context, *reconcile.Result) error { return nil }

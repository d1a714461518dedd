package directory

import (
	"context"
	"time"

	"location-directory/core/dedupe"
	"location-directory/core/metrics"
	"location-directory/core/reconcile"
	"location-directory/feature/directory/audit"
	"location-directory/feature/directory/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Skip reasons reported for webhook events that were not reconciled.
const (
	SkipIgnoredType = "ignored_event_type"
	SkipDuplicate   = "duplicate_event"
)

// Reconciler places a single entity into the directory.
type Reconciler interface {
	Reconcile(ctx context.Context, entityID string, opts reconcile.Options) (*reconcile.Result, error)
}

// Outcome is the result of dispatching one webhook event.
// Exactly one of Result and Skipped is set.
type Outcome struct {
	Result  *reconcile.Result
	Skipped string
}

// Service dispatches change events to the reconciliation engine.
type Service struct {
	engine   Reconciler
	tracker  dedupe.Tracker
	recorder audit.Recorder
	logger   *zap.Logger
	group    singleflight.Group
}

// NewService creates a new directory service. Nil tracker and recorder disable
// deduplication and auditing.
func NewService(engine Reconciler, tracker dedupe.Tracker, recorder audit.Recorder, logger *zap.Logger) *Service {
	if tracker == nil {
		tracker = dedupe.Noop{}
	}
	if recorder == nil {
		recorder = audit.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		engine:   engine,
		tracker:  tracker,
		recorder: recorder,
		logger:   logger,
	}
}

// Dispatch reconciles the entity named by a create or update event.
// Other event types and already completed deliveries are skipped.
func (s *Service) Dispatch(ctx context.Context, ev *models.EntityWebhookData, opts reconcile.Options) (*Outcome, error) {
	l := s.logger.With(
		zap.String("event_type", ev.Meta.EventType),
		zap.String("event_id", ev.Meta.UUID),
		zap.String("entity_id", ev.EntityID),
	)

	if !ev.IsReconcilable() {
		l.Debug("Ignoring event")
		metrics.EventsTotal.WithLabelValues(ev.Meta.EventType, "skipped").Inc()
		return &Outcome{Skipped: SkipIgnoredType}, nil
	}

	if !opts.Simulate {
		seen, err := s.tracker.Seen(ctx, ev.Meta.UUID)
		if err != nil {
			l.Warn("Event dedupe lookup failed", zap.Error(err))
		}
		if seen {
			l.Info("Event already processed")
			metrics.EventsTotal.WithLabelValues(ev.Meta.EventType, "duplicate").Inc()
			return &Outcome{Skipped: SkipDuplicate}, nil
		}
	}

	result, err := s.Reconcile(ctx, ev.EntityID, opts)
	if err != nil {
		metrics.EventsTotal.WithLabelValues(ev.Meta.EventType, "failed").Inc()
		return nil, err
	}
	metrics.EventsTotal.WithLabelValues(ev.Meta.EventType, "reconciled").Inc()

	if !opts.Simulate {
		if err := s.tracker.Mark(ctx, ev.Meta.UUID); err != nil {
			l.Warn("Failed to mark event as processed", zap.Error(err))
		}
	}
	return &Outcome{Result: result}, nil
}

// Reconcile runs the engine for one entity. Concurrent calls for the same
// entity and mode share a single run.
func (s *Service) Reconcile(ctx context.Context, entityID string, opts reconcile.Options) (*reconcile.Result, error) {
	key := entityID
	if opts.Simulate {
		key += ":simulate"
	}

	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.run(ctx, entityID, opts)
	})
	if shared {
		s.logger.Debug("Joined in-flight reconciliation", zap.String("entity_id", entityID))
	}
	if err != nil {
		return nil, err
	}
	return v.(*reconcile.Result), nil
}

func (s *Service) run(ctx context.Context, entityID string, opts reconcile.Options) (*reconcile.Result, error) {
	l := s.logger.With(zap.String("entity_id", entityID), zap.Bool("simulate", opts.Simulate))

	start := time.Now()
	result, err := s.engine.Reconcile(ctx, entityID, opts)
	metrics.ReconcileDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	if result != nil && !opts.Simulate {
		for _, action := range result.Applied {
			metrics.ActionsTotal.WithLabelValues(string(action.Kind)).Inc()
		}
		if result.Changed() {
			if aerr := s.recorder.Record(ctx, result); aerr != nil {
				metrics.AuditFailuresTotal.Inc()
				l.Warn("Failed to record audit trail", zap.Error(aerr))
			}
		}
	}

	if err != nil {
		applied := 0
		if result != nil {
			applied = len(result.Applied)
		}
		l.Error("Reconciliation failed", zap.Int("applied", applied), zap.Error(err))
		return nil, err
	}

	l.Info("Reconciled entity",
		zap.String("region", result.Region),
		zap.String("city", result.City),
		zap.Int("applied", len(result.Applied)),
	)
	return result, nil
}

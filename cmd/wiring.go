package cmd

import (
	"context"
	"fmt"

	"location-directory/core/config"
	"location-directory/core/database"
	"location-directory/core/knowledge"
	"location-directory/core/reconcile"
	"location-directory/core/storage"
	"location-directory/feature/directory/audit"

	"go.uber.org/zap"
)

// newEngine builds the reconciliation engine on the live knowledge store.
func newEngine(cfg *config.Config, l *zap.Logger) (*reconcile.Engine, error) {
	if cfg.Knowledge.APIKey == "" {
		l.Warn("Knowledge API key is not set; store requests will be rejected")
	}

	client, err := knowledge.NewClient(cfg.Knowledge)
	if err != nil {
		return nil, fmt.Errorf("failed to create knowledge client: %w", err)
	}
	return reconcile.NewEngine(client, cfg.Directory, l), nil
}

// newRecorder builds the audit recorder selected by audit.sink.
func newRecorder(ctx context.Context, cfg *config.Config, l *zap.Logger) (audit.Recorder, error) {
	switch cfg.Audit.Sink {
	case config.AuditSinkDatabase:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to audit database: %w", err)
		}
		rec := audit.NewDBRecorder(db)
		if err := rec.Migrate(); err != nil {
			return nil, err
		}
		l.Info("Recording audit trail in database", zap.String("driver", cfg.Database.Driver))
		return rec, nil

	case config.AuditSinkStorage:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		l.Info("Archiving audit trail in object storage", zap.String("bucket", cfg.Storage.Bucket))
		return audit.NewStorageRecorder(client, cfg.Storage.Bucket), nil

	default:
		return audit.Noop{}, nil
	}
}

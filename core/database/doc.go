// Package database handles the optional SQL connection used to persist the
// reconciliation audit trail.
//
// It provides a wrapper around GORM to configure MySQL (production) or SQLite
// (local runs and tests) connections from the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Optional database connection failed", zap.Error(err))
//	}
package database

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"location-directory/core/reconcile"

	"gorm.io/gorm"
)

// Entry is one applied mutation stored in the audit table.
type Entry struct {
	ID        uint      `gorm:"primaryKey"`
	EntityID  string    `gorm:"column:entity_id;size:191;index"`
	Seq       int       `gorm:"column:seq"`
	NodeID    string    `gorm:"column:node_id;size:191"`
	Kind      string    `gorm:"column:kind;size:16"`
	Data      string    `gorm:"column:data;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name used by Entry.
func (Entry) TableName() string {
	return "directory_audit"
}

// DBRecorder writes one row per applied action.
type DBRecorder struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDBRecorder creates a recorder on db. Call Migrate before first use on a fresh schema.
func NewDBRecorder(db *gorm.DB) *DBRecorder {
	return &DBRecorder{db: db, now: time.Now}
}

// Migrate creates or updates the audit table.
func (r *DBRecorder) Migrate() error {
	if err := r.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("migrate audit table: %w", err)
	}
	return nil
}

func (r *DBRecorder) Record(ctx context.Context, result *reconcile.Result) error {
	if result == nil || !result.Changed() {
		return nil
	}

	createdAt := r.now().UTC()
	entries := make([]Entry, 0, len(result.Applied))
	for i, action := range result.Applied {
		data, err := json.Marshal(action.Data)
		if err != nil {
			return fmt.Errorf("encode action %d of %s: %w", i, result.ID, err)
		}
		entries = append(entries, Entry{
			EntityID:  result.ID,
			Seq:       i,
			NodeID:    action.ID,
			Kind:      string(action.Kind),
			Data:      string(data),
			CreatedAt: createdAt,
		})
	}

	if err := r.db.WithContext(ctx).Create(&entries).Error; err != nil {
		return fmt.Errorf("insert audit entries for %s: %w", result.ID, err)
	}
	return nil
}

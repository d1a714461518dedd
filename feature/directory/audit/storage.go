package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"time"

	"location-directory/core/reconcile"
	"location-directory/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageRecorder archives each result as a JSON object.
type StorageRecorder struct {
	client storage.Client
	bucket string
	now    func() time.Time
}

// NewStorageRecorder creates a recorder writing into bucket.
func NewStorageRecorder(client storage.Client, bucket string) *StorageRecorder {
	return &StorageRecorder{client: client, bucket: bucket, now: time.Now}
}

// ObjectKey returns the archive key of a result recorded at t.
func ObjectKey(entityID string, t time.Time) string {
	return path.Join("audit", entityID, strconv.FormatInt(t.UnixNano(), 10)+".json")
}

func (r *StorageRecorder) Record(ctx context.Context, result *reconcile.Result) error {
	if result == nil || !result.Changed() {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result %s: %w", result.ID, err)
	}

	key := ObjectKey(result.ID, r.now())
	_, err = r.client.PutObject(ctx, r.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

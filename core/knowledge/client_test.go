package knowledge_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"location-directory/core/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *knowledge.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := knowledge.NewClient(knowledge.Config{
		BaseURL:        srv.URL + "/v2/accounts/me/",
		APIKey:         "secret",
		Version:        "20210714",
		TimeoutSeconds: 2,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := knowledge.NewClient(knowledge.Config{BaseURL: "https://api.yext.com/v2/accounts/me/"})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("MissingScheme", func(t *testing.T) {
		client, err := knowledge.NewClient(knowledge.Config{BaseURL: "api.yext.com"})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/accounts/me/entities/loc1", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("api_key"))
		assert.Equal(t, "20210714", r.URL.Query().Get("v"))

		_, _ = io.WriteString(w, `{"meta": {"uuid": "u1", "errors": []},
		  "response": {"meta": {"id": "loc1", "entityType": "location"},
		    "address": {"city": "Springfield", "region": "Illinois"}}}`)
	})

	e, err := client.Get(context.Background(), "loc1")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "loc1", e.ID())
	assert.Equal(t, "Illinois", e.Address.Region)
}

func TestClient_Get_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	e, err := client.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestClient_Get_RemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "boom")
	})

	_, err := client.Get(context.Background(), "loc1")
	var remote *knowledge.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusInternalServerError, remote.Status)
	assert.Equal(t, "boom", remote.Body)
	assert.Equal(t, "get", remote.Op)
}

func TestClient_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/accounts/me/entities", r.URL.Path)
		assert.Equal(t, "ce_region", r.URL.Query().Get("entityType"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		meta := body["meta"].(map[string]any)
		assert.Equal(t, "dir-illinois", meta["id"])
		assert.Equal(t, []any{"dir-root"}, body["parentRef"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"meta": {}, "response": {"meta": {"id": "dir-illinois", "entityType": "ce_region"}}}`)
	})

	e, err := client.Create(context.Background(), "dir-illinois", "ce_region", knowledge.Entity{
		Name:      "Illinois",
		ParentRef: []string{"dir-root"},
		ChildRefs: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "dir-illinois", e.ID())
}

func TestClient_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v2/accounts/me/entities/dir-root", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"childRefs": ["dir-illinois"], "updatedAt": "ts"}`, string(raw))

		_, _ = io.WriteString(w, `{"meta": {}, "response": {"meta": {"id": "dir-root"}, "childRefs": ["dir-illinois"]}}`)
	})

	e, err := client.Update(context.Background(), "dir-root", knowledge.ChildRefsPatch([]string{"dir-illinois"}, "ts"))
	require.NoError(t, err)
	assert.Equal(t, []string{"dir-illinois"}, e.ChildRefs)
}

func TestClient_Update_RemoteError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"meta": {"errors": [{"code": 2000, "message": "bad"}]}}`)
	})

	_, err := client.Update(context.Background(), "loc1", knowledge.ParentPatch("c", "ts"))
	var remote *knowledge.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusBadRequest, remote.Status)
}

func TestClient_Write_SparseResponse(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"EmptyResponse", http.StatusOK, `{"meta": {}, "response": {}}`},
		{"NullResponse", http.StatusOK, `{"meta": {}, "response": null}`},
		{"NoContent", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			ctx := context.Background()

			updated, err := client.Update(ctx, "dir-root", knowledge.ChildRefsPatch([]string{"dir-ohio"}, "ts"))
			require.NoError(t, err)
			assert.Equal(t, "dir-root", updated.ID())
			assert.Equal(t, []string{"dir-ohio"}, updated.ChildRefs)
			assert.Equal(t, "ts", updated.UpdatedAt)

			created, err := client.Create(ctx, "dir-ohio", "ce_region", knowledge.Entity{
				Name:      "Ohio",
				ParentRef: []string{"dir-root"},
			})
			require.NoError(t, err)
			assert.Equal(t, "dir-ohio", created.ID())
			assert.Equal(t, "ce_region", created.Meta.EntityType)
			assert.Equal(t, "Ohio", created.Name)
		})
	}
}

func TestClient_Update_MalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"meta":`)
	})

	_, err := client.Update(context.Background(), "loc1", knowledge.ParentPatch("c", "ts"))
	assert.ErrorContains(t, err, "decode response")
}

func TestClient_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{"Removed", http.StatusOK, true, false},
		{"AlreadyAbsent", http.StatusNotFound, false, false},
		{"Failure", http.StatusBadGateway, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				w.WriteHeader(tt.status)
			})

			got, err := client.Delete(context.Background(), "dir-illinois-springfield")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

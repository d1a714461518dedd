package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Client is the live knowledge store client.
type Client struct {
	base    *url.URL
	apiKey  string
	version string
	http    *http.Client
}

// apiResponse is the envelope wrapped around every store response.
type apiResponse struct {
	Meta struct {
		UUID   string `json:"uuid"`
		Errors []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"errors"`
	} `json:"meta"`
	Response json.RawMessage `json:"response"`
}

// NewClient creates a knowledge store client based on the configuration.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid knowledge base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid knowledge base url %q: scheme and host are required", cfg.BaseURL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		base:    base,
		apiKey:  cfg.APIKey,
		version: cfg.Version,
		http:    &http.Client{Transport: transport, Timeout: timeoutDuration},
	}, nil
}

// Get fetches an entity by id. It returns nil, nil when the entity does not exist.
func (c *Client) Get(ctx context.Context, id string) (*Entity, error) {
	status, body, err := c.do(ctx, http.MethodGet, c.entityURL(id, nil), nil)
	if err != nil {
		return nil, fmt.Errorf("get entity %s: %w", id, err)
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if !success(status) {
		return nil, &RemoteError{Op: "get", ID: id, Status: status, Body: string(body)}
	}
	return decodeEntity(body)
}

// Create creates an entity of the given type with the given id.
func (c *Client) Create(ctx context.Context, id, entityType string, body Entity) (*Entity, error) {
	body.Meta.ID = id
	body.Meta.EntityType = entityType

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode entity %s: %w", id, err)
	}

	status, resp, err := c.do(ctx, http.MethodPost, c.entityURL("", url.Values{"entityType": {entityType}}), payload)
	if err != nil {
		return nil, fmt.Errorf("create entity %s: %w", id, err)
	}
	if !success(status) {
		return nil, &RemoteError{Op: "create", ID: id, Status: status, Body: string(resp)}
	}
	return decodeWritten(resp, body)
}

// Update applies a field-level upsert of patch onto the entity.
func (c *Client) Update(ctx context.Context, id string, patch Patch) (*Entity, error) {
	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encode patch %s: %w", id, err)
	}

	status, resp, err := c.do(ctx, http.MethodPut, c.entityURL(id, nil), payload)
	if err != nil {
		return nil, fmt.Errorf("update entity %s: %w", id, err)
	}
	if !success(status) {
		return nil, &RemoteError{Op: "update", ID: id, Status: status, Body: string(resp)}
	}
	return decodeWritten(resp, patch.Apply(Entity{Meta: Meta{ID: id}}))
}

// Delete removes an entity. It reports false when the entity was already absent.
func (c *Client) Delete(ctx context.Context, id string) (bool, error) {
	status, resp, err := c.do(ctx, http.MethodDelete, c.entityURL(id, nil), nil)
	if err != nil {
		return false, fmt.Errorf("delete entity %s: %w", id, err)
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if !success(status) {
		return false, &RemoteError{Op: "delete", ID: id, Status: status, Body: string(resp)}
	}
	return true, nil
}

func (c *Client) entityURL(id string, extra url.Values) string {
	u := c.base.JoinPath("entities")
	if id != "" {
		u = u.JoinPath(id)
	}

	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)
	q.Set("v", c.version)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) do(ctx context.Context, method, target string, payload []byte) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

func decodeEntity(data []byte) (*Entity, error) {
	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var entity Entity
	if err := json.Unmarshal(envelope.Response, &entity); err != nil {
		return nil, fmt.Errorf("decode entity: %w", err)
	}
	return &entity, nil
}

// decodeWritten decodes the entity echoed by a successful write. The store may
// answer with no body or a sparse entity; fallback is returned in that case.
func decodeWritten(data []byte, fallback Entity) (*Entity, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &fallback, nil
	}

	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	raw := bytes.TrimSpace(envelope.Response)
	if len(raw) == 0 || string(raw) == "null" {
		return &fallback, nil
	}

	var entity Entity
	if err := json.Unmarshal(raw, &entity); err != nil {
		if errors.Is(err, ErrMissingID) {
			return &fallback, nil
		}
		return nil, fmt.Errorf("decode entity: %w", err)
	}
	return &entity, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}

package models

import (
	"encoding/json"
	"errors"
)

// Event types delivered by the knowledge store webhook.
const (
	EventCreateEntity = "CREATE_ENTITY"
	EventUpdateEntity = "UPDATE_ENTITY"
	EventDeleteEntity = "DELETE_ENTITY"
)

// ErrMissingEntityID is returned when an event carries no entityId.
var ErrMissingEntityID = errors.New("event is missing entityId")

// EventMeta describes the delivery of a webhook event.
type EventMeta struct {
	EventType            string `json:"eventType"`
	UUID                 string `json:"uuid"`
	Timestamp            int64  `json:"timestamp"`
	AccountID            string `json:"accountId"`
	Actor                string `json:"actor"`
	AppSpecificAccountID string `json:"appSpecificAccountId"`
}

// ChangedFields lists the fields an update touched.
type ChangedFields struct {
	Language   string   `json:"language"`
	FieldNames []string `json:"fieldNames"`
}

// EntityWebhookData is the payload of an entity change event.
// Profiles are kept raw; only the entity id drives reconciliation.
type EntityWebhookData struct {
	Meta             EventMeta         `json:"meta"`
	EntityID         string            `json:"entityId"`
	PrimaryProfile   json.RawMessage   `json:"primaryProfile,omitempty"`
	LanguageProfiles []json.RawMessage `json:"languageProfiles,omitempty"`
	ChangedFields    *ChangedFields    `json:"changedFields,omitempty"`
}

// Validate checks the fields reconciliation depends on.
func (e *EntityWebhookData) Validate() error {
	if e.EntityID == "" {
		return ErrMissingEntityID
	}
	return nil
}

// IsReconcilable reports whether the event kind can move an entity.
func (e *EntityWebhookData) IsReconcilable() bool {
	switch e.Meta.EventType {
	case EventCreateEntity, EventUpdateEntity:
		return true
	}
	return false
}

// EventResponse is returned for webhook deliveries that were not reconciled.
type EventResponse struct {
	ID      string `json:"id"`
	Skipped string `json:"skipped"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

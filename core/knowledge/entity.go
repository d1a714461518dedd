package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EntityTypeLocation is the entity type of the business records placed into the directory.
const EntityTypeLocation = "location"

// Meta holds the store-managed metadata of an entity.
type Meta struct {
	ID          string `json:"id"`
	EntityType  string `json:"entityType,omitempty"`
	AccountID   string `json:"accountId,omitempty"`
	UID         string `json:"uid,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	FolderID    string `json:"folderId,omitempty"`
	Language    string `json:"language,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Address is the postal address of a location.
type Address struct {
	Line1       string `json:"line1,omitempty"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Entity is a record in the knowledge store: a location or a directory node.
type Entity struct {
	Meta      Meta
	Name      string
	Address   *Address
	ParentRef []string
	ChildRefs []string
	UpdatedAt string

	// Extra carries every field not modelled above, keyed by its JSON name.
	Extra map[string]json.RawMessage
}

// ErrMissingID is returned when decoding an entity without meta.id.
var ErrMissingID = errors.New("knowledge: entity is missing meta.id")

// ID returns the entity id.
func (e Entity) ID() string {
	return e.Meta.ID
}

// ParentID returns the single id in ParentRef, or "" when unset.
func (e Entity) ParentID() string {
	if len(e.ParentRef) == 0 {
		return ""
	}
	return e.ParentRef[0]
}

// known lists the JSON keys owned by the closed schema.
var known = map[string]struct{}{
	"meta": {}, "name": {}, "address": {}, "parentRef": {}, "childRefs": {}, "updatedAt": {},
}

// MarshalJSON writes the known fields merged with Extra.
func (e Entity) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.Extra)+6)
	for k, v := range e.Extra {
		if _, ok := known[k]; !ok {
			out[k] = v
		}
	}

	put := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		out[key] = raw
		return nil
	}

	if err := put("meta", e.Meta); err != nil {
		return nil, err
	}
	if e.Name != "" {
		if err := put("name", e.Name); err != nil {
			return nil, err
		}
	}
	if e.Address != nil {
		if err := put("address", e.Address); err != nil {
			return nil, err
		}
	}
	if e.ParentRef != nil {
		if err := put("parentRef", e.ParentRef); err != nil {
			return nil, err
		}
	}
	if e.ChildRefs != nil {
		if err := put("childRefs", e.ChildRefs); err != nil {
			return nil, err
		}
	}
	if e.UpdatedAt != "" {
		if err := put("updatedAt", e.UpdatedAt); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the known fields and keeps the rest in Extra.
// It fails only when meta.id is missing.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var decoded Entity
	get := func(key string, v any) error {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			return nil
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		return nil
	}

	if err := get("meta", &decoded.Meta); err != nil {
		return err
	}
	if decoded.Meta.ID == "" {
		return ErrMissingID
	}
	if err := get("name", &decoded.Name); err != nil {
		return err
	}
	if raw, ok := fields["address"]; ok && string(raw) != "null" {
		decoded.Address = &Address{}
		if err := json.Unmarshal(raw, decoded.Address); err != nil {
			return fmt.Errorf("decode address: %w", err)
		}
	}
	if err := get("parentRef", &decoded.ParentRef); err != nil {
		return err
	}
	if err := get("childRefs", &decoded.ChildRefs); err != nil {
		return err
	}
	if err := get("updatedAt", &decoded.UpdatedAt); err != nil {
		return err
	}

	for k, v := range fields {
		if _, ok := known[k]; ok {
			continue
		}
		if decoded.Extra == nil {
			decoded.Extra = make(map[string]json.RawMessage)
		}
		decoded.Extra[k] = v
	}

	*e = decoded
	return nil
}

// Patch is a field-level update. Nil fields are left untouched by the store.
type Patch struct {
	ParentRef *[]string `json:"parentRef,omitempty"`
	ChildRefs *[]string `json:"childRefs,omitempty"`
	UpdatedAt string    `json:"updatedAt,omitempty"`
}

// ParentPatch sets the single parent reference. An empty parentID clears it.
func ParentPatch(parentID, updatedAt string) Patch {
	refs := []string{}
	if parentID != "" {
		refs = append(refs, parentID)
	}
	return Patch{ParentRef: &refs, UpdatedAt: updatedAt}
}

// ChildRefsPatch replaces the forward reference list.
func ChildRefsPatch(refs []string, updatedAt string) Patch {
	if refs == nil {
		refs = []string{}
	}
	return Patch{ChildRefs: &refs, UpdatedAt: updatedAt}
}

// Apply returns a copy of e with the patch fields written over it.
func (p Patch) Apply(e Entity) Entity {
	if p.ParentRef != nil {
		e.ParentRef = append([]string{}, (*p.ParentRef)...)
	}
	if p.ChildRefs != nil {
		e.ChildRefs = append([]string{}, (*p.ChildRefs)...)
	}
	if p.UpdatedAt != "" {
		e.UpdatedAt = p.UpdatedAt
	}
	return e
}

package reconcile

import (
	"context"
	"fmt"
	"time"

	"location-directory/core/directory"
	"location-directory/core/knowledge"
	"location-directory/core/utils"

	"go.uber.org/zap"
)

// Engine places location entities into the directory hierarchy.
type Engine struct {
	store  Store
	scheme directory.Scheme
	cfg    directory.Config
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an engine backed by store.
func NewEngine(store Store, cfg directory.Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:  store,
		scheme: directory.NewScheme(cfg.Prefix),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for updatedAt timestamps.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Scheme returns the identifier scheme the engine derives node ids with.
func (e *Engine) Scheme() directory.Scheme {
	return e.scheme
}

// run holds the state of a single reconciliation.
type run struct {
	*Engine
	store  Store
	log    *zap.Logger
	result *Result
}

// Reconcile moves the entity into the city node implied by its address and
// returns every mutation it applied, in order.
func (e *Engine) Reconcile(ctx context.Context, entityID string, opts Options) (*Result, error) {
	store := e.store
	if opts.Simulate {
		store = NewSimulated(e.store)
	}

	r := &run{
		Engine: e,
		store:  store,
		log:    e.logger.With(zap.String("entity_id", entityID), zap.Bool("simulate", opts.Simulate)),
		result: &Result{ID: entityID, Applied: []Action{}},
	}

	entity, err := r.store.Get(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("fetch entity %s: %w", entityID, err)
	}
	if entity == nil {
		return nil, &NotFoundError{ID: entityID}
	}

	if entity.Meta.EntityType != knowledge.EntityTypeLocation {
		r.log.Debug("Skipping non-location entity", zap.String("entity_type", entity.Meta.EntityType))
		return r.result, nil
	}

	var addr knowledge.Address
	if entity.Address != nil {
		addr = *entity.Address
	}
	r.result.Region = addr.Region
	r.result.City = addr.City

	desiredCityID := e.scheme.CityID(addr.City, addr.Region)
	currentCityID := entity.ParentID()
	if desiredCityID == currentCityID {
		return r.result, nil
	}

	if desiredCityID != "" {
		city, err := r.ensureCity(ctx, desiredCityID, addr)
		if err != nil {
			return r.result, err
		}

		if err := r.update(ctx, entityID, knowledge.ParentPatch(desiredCityID, r.timestamp())); err != nil {
			return r.result, err
		}

		if !utils.ContainsRef(city.ChildRefs, entityID) {
			refs := utils.InsertRef(city.ChildRefs, entityID)
			if err := r.update(ctx, desiredCityID, knowledge.ChildRefsPatch(refs, r.timestamp())); err != nil {
				return r.result, err
			}
		}
	} else {
		// The address no longer names a city, so the entity leaves the directory.
		if err := r.update(ctx, entityID, knowledge.ParentPatch("", r.timestamp())); err != nil {
			return r.result, err
		}
	}

	if currentCityID == "" {
		return r.result, nil
	}

	if err := r.detach(ctx, currentCityID, entityID); err != nil {
		return r.result, err
	}
	return r.result, nil
}

// ensureCity returns the city node, creating it and any missing ancestor first.
func (r *run) ensureCity(ctx context.Context, cityID string, addr knowledge.Address) (*knowledge.Entity, error) {
	city, err := r.get(ctx, cityID)
	if err != nil || city != nil {
		return city, err
	}

	regionID := r.scheme.RegionID(addr.Region)
	region, err := r.get(ctx, regionID)
	if err != nil {
		return nil, err
	}

	if region == nil {
		root, err := r.get(ctx, r.cfg.RootID)
		if err != nil {
			return nil, err
		}
		if root == nil {
			return nil, &ConfigurationError{RootID: r.cfg.RootID}
		}

		region, err = r.create(ctx, regionID, r.cfg.RegionType, knowledge.Entity{
			Name:      addr.Region,
			ParentRef: []string{root.ID()},
			ChildRefs: []string{},
			UpdatedAt: r.timestamp(),
		})
		if err != nil {
			return nil, err
		}

		if !utils.ContainsRef(root.ChildRefs, regionID) {
			refs := utils.InsertRef(root.ChildRefs, regionID)
			if err := r.update(ctx, root.ID(), knowledge.ChildRefsPatch(refs, r.timestamp())); err != nil {
				return nil, err
			}
		}
	}

	city, err = r.create(ctx, cityID, r.cfg.CityType, knowledge.Entity{
		Name:      addr.City,
		ParentRef: []string{regionID},
		ChildRefs: []string{},
		UpdatedAt: r.timestamp(),
	})
	if err != nil {
		return nil, err
	}

	if !utils.ContainsRef(region.ChildRefs, cityID) {
		refs := utils.InsertRef(region.ChildRefs, cityID)
		if err := r.update(ctx, regionID, knowledge.ChildRefsPatch(refs, r.timestamp())); err != nil {
			return nil, err
		}
	}

	return city, nil
}

// detach removes childID from its former parent and deletes the ancestors it
// leaves empty. The root keeps its place even when emptied.
func (r *run) detach(ctx context.Context, parentID, childID string) error {
	parent, err := r.get(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		r.log.Warn("Previous parent no longer exists", zap.String("parent_id", parentID))
		return nil
	}

	remaining := parent.ChildRefs
	if utils.ContainsRef(remaining, childID) {
		remaining = utils.RemoveRef(remaining, childID)
		if err := r.update(ctx, parentID, knowledge.ChildRefsPatch(remaining, r.timestamp())); err != nil {
			return err
		}
	}

	if len(remaining) > 0 || parentID == r.cfg.RootID {
		return nil
	}

	if err := r.delete(ctx, parentID); err != nil {
		return err
	}

	// The emptied node's own parent is checked against its own child list.
	grandparentID := parent.ParentID()
	if grandparentID == "" {
		return nil
	}
	return r.detach(ctx, grandparentID, parentID)
}

func (r *run) get(ctx context.Context, id string) (*knowledge.Entity, error) {
	if id == "" {
		return nil, nil
	}
	e, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	return e, nil
}

func (r *run) create(ctx context.Context, id, entityType string, body knowledge.Entity) (*knowledge.Entity, error) {
	body.Meta = knowledge.Meta{ID: id, EntityType: entityType}

	if _, err := r.store.Create(ctx, id, entityType, body); err != nil {
		return nil, fmt.Errorf("create %s: %w", id, err)
	}
	r.record(id, ActionCreate, body)

	// The store may echo back a sparse entity; the requested body is authoritative.
	return &body, nil
}

func (r *run) update(ctx context.Context, id string, patch knowledge.Patch) error {
	if _, err := r.store.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	r.record(id, ActionUpdate, patch)
	return nil
}

func (r *run) delete(ctx context.Context, id string) error {
	removed, err := r.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if !removed {
		r.log.Warn("Node was already deleted", zap.String("node_id", id))
		return nil
	}
	r.record(id, ActionDelete, map[string]any{})
	return nil
}

func (r *run) record(id string, kind ActionKind, data any) {
	r.log.Debug("Applied action", zap.String("node_id", id), zap.String("kind", string(kind)))
	r.result.Applied = append(r.result.Applied, Action{ID: id, Kind: kind, Data: data})
}

func (r *run) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

package entx

import (
	"time"

	"github.com/helix-engine/entx/stage"
)

// Entity is a container binding at most one component instance per component
// name. Mutations stamp the entity's changed time; disposal and release are
// driven by the lifecycle methods in lifecycle.go.
//
// An Entity must only ever be touched from the goroutine that owns its
// Manager; see the concurrency note on Manager.
type Entity struct {
	id  EntityID
	mgr *Manager
	st  *stage.Holder

	components map[string]Component
	order      []string // component names in insertion order, for enumeration

	changedAt      time.Time
	disposingSince time.Time

	// Components that disposed individually and await release-time removal.
	// The slice is borrowed from the Manager's buffer pool; nil when unused.
	pendingDisposed []Component
}

// ID returns the entity's handle. Handles are never reused: an entity drawn
// from the pool gets a fresh ID.
func (e *Entity) ID() EntityID {
	return e.id
}

// Stage reports where the entity is in its lifecycle.
func (e *Entity) Stage() stage.Stage {
	return e.st.Current()
}

// Add inserts a component, keyed by its name. The call is a no-op that
// returns the entity unchanged when the entity is disposing, when the
// component is already attached somewhere, or when a live component of the
// same name is already present; each case emits a diagnostic instead of
// failing, because these are common benign races in calling code.
//
// If the existing component of the same name is itself disposing, the new
// instance takes over the slot. The old instance has already been queued for
// release, and the release pass only removes a queued component from the map
// when it is still the map's current entry, so the takeover is safe.
//
// A nil component or an empty name is a programming error and panics.
func (e *Entity) Add(c Component) *Entity {
	e.mgr.mustComponent(c)
	name := c.Name()

	if e.st.Current() != stage.Active {
		e.warnPolicy(ErrEntityDisposing, name)
		return e
	}
	if owner := c.Owner(); owner != NoOwner {
		if owner == e.id {
			e.warnPolicy(ErrComponentReused, name)
		} else {
			e.warnPolicy(ErrForeignOwner, name)
		}
		return e
	}
	if existing, ok := e.components[name]; ok {
		if _, disposing := existing.DisposingSince(); !disposing {
			e.warnDuplicate(existing, c)
			return e
		}
		// Slot takeover: the old instance is queued for release.
		e.components[name] = c
		c.SetOwner(e.id)
		e.changedAt = e.mgr.now()
		e.mgr.fireComponentAdded(e, c)
		return e
	}

	e.components[name] = c
	e.order = append(e.order, name)
	c.SetOwner(e.id)
	e.changedAt = e.mgr.now()
	e.mgr.fireComponentAdded(e, c)
	return e
}

// Remove triggers disposal of the named component. The component stays in the
// map until the next release pass; only the changed time and the disposing
// flag move now. Rejected with a diagnostic while the entity is disposing.
// An empty name is a programming error and panics.
func (e *Entity) Remove(name string) *Entity {
	e.mgr.mustName(name)

	if e.st.Current() != stage.Active {
		e.warnPolicy(ErrEntityDisposing, name)
		return e
	}
	c, ok := e.components[name]
	if !ok {
		return e
	}

	c.Dispose()
	e.changedAt = e.mgr.now()
	e.mgr.fireComponentRemoved(e, c)
	return e
}

// Replace is Remove of the component's name followed by Add of the new
// instance, so the new instance occupies the slot while the old one drains
// through the deferred-disposal queue.
func (e *Entity) Replace(c Component) *Entity {
	e.mgr.mustComponent(c)
	e.Remove(c.Name())
	return e.Add(c)
}

// Has reports whether a live component of the given name is present. With
// allowDisposed, a component mid-disposal still counts.
func (e *Entity) Has(name string, allowDisposed bool) bool {
	return e.Get(name, allowDisposed) != nil
}

// Get returns the stored component, or nil. A component that is disposing is
// only returned when allowDisposed is true.
func (e *Entity) Get(name string, allowDisposed bool) Component {
	e.mgr.mustName(name)

	c, ok := e.components[name]
	if !ok {
		return nil
	}
	if _, disposing := c.DisposingSince(); disposing && !allowDisposed {
		return nil
	}
	return c
}

// Len is the count of stored components, including ones flagged disposing
// but not yet released.
func (e *Entity) Len() int {
	return len(e.components)
}

// All appends every stored component to buf in insertion order and returns
// the result. A nil buf allocates.
func (e *Entity) All(buf []Component) []Component {
	for _, name := range e.order {
		buf = append(buf, e.components[name])
	}
	return buf
}

// Changed returns the zero time if the entity itself was never mutated.
// Otherwise it folds the entity's own change time with every stored
// component's, disposing or not, so dependent systems can detect "this entity
// or anything on it mutated since T" with one comparison. The result is
// non-decreasing between pool cycles.
func (e *Entity) Changed() time.Time {
	if e.changedAt.IsZero() {
		return time.Time{}
	}
	latest := e.changedAt
	for _, name := range e.order {
		if t := e.components[name].Changed(); t.After(latest) {
			latest = t
		}
	}
	return latest
}

func (e *Entity) warnDuplicate(existing, incoming Component) {
	diff, err := componentSchemaDiff(existing, incoming)
	if err != nil || diff == "" {
		e.warnPolicy(ErrDuplicateComponent, incoming.Name())
		return
	}
	// Same name, different shape: surface the schema diff so the collision
	// can be tracked down.
	e.mgr.logger.Warn().
		Uint64("entity_id", uint64(e.id)).
		Str("component_name", incoming.Name()).
		Str("schema_diff", diff).
		Err(ErrDuplicateComponent).
		Msg("rejected add of same-name component with a different schema")
}

// dropOrder removes name from the enumeration order. Linear scan; entities
// hold few components.
func (e *Entity) dropOrder(name string) {
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			return
		}
	}
}

package entx

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// DebugStateElement is a structured snapshot of an entity's current state.
type DebugStateElement struct {
	ID              EntityID                   `json:"id"`
	Stage           string                     `json:"stage"`
	Changed         *time.Time                 `json:"changed,omitempty"`
	DisposingSince  *time.Time                 `json:"disposing_since,omitempty"`
	PendingDisposed []json.RawMessage          `json:"pending_disposed,omitempty"`
	Components      map[string]json.RawMessage `json:"components"`
}

// DebugState snapshots the entity: change and disposal times, the queued
// pending-disposed components, and each stored component's own snapshot keyed
// by name.
func (e *Entity) DebugState() (DebugStateElement, error) {
	el := DebugStateElement{
		ID:         e.id,
		Stage:      string(e.st.Current()),
		Components: make(map[string]json.RawMessage, len(e.components)),
	}
	if !e.changedAt.IsZero() {
		changed := e.Changed()
		el.Changed = &changed
	}
	if !e.disposingSince.IsZero() {
		since := e.disposingSince
		el.DisposingSince = &since
	}

	for _, c := range e.pendingDisposed {
		raw, err := componentSnapshot(c)
		if err != nil {
			return DebugStateElement{}, err
		}
		el.PendingDisposed = append(el.PendingDisposed, raw)
	}
	for _, name := range e.order {
		raw, err := componentSnapshot(e.components[name])
		if err != nil {
			return DebugStateElement{}, err
		}
		el.Components[name] = raw
	}
	return el, nil
}

func componentSnapshot(c Component) (json.RawMessage, error) {
	var v any = c
	if ds, ok := c.(DebugStater); ok {
		v = ds.DebugState()
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to snapshot component %q", c.Name())
	}
	return raw, nil
}

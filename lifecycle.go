package entx

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/helix-engine/entx/log"
	"github.com/helix-engine/entx/stage"
	"github.com/helix-engine/entx/statsd"
)

// Dispose moves the entity from Active to Disposing and cascades into every
// stored component's own Dispose, in insertion order. Components are not
// removed from the map here; reclamation happens in Release. Calling Dispose
// on an entity that is already disposing is a no-op.
func (e *Entity) Dispose() {
	if !e.st.CompareAndSwap(stage.Active, stage.Disposing) {
		return
	}
	e.disposingSince = e.mgr.now()
	e.mgr.fireEntityDisposed(e)

	log.Entity(&e.mgr.logger, zerolog.DebugLevel, uint64(e.id), string(stage.Disposing), e.loggableComponents())

	for _, name := range append([]string(nil), e.order...) {
		e.components[name].Dispose()
	}
}

// Release is the reclamation step.
//
// While the entity is still Active it only drains the deferred-disposal
// queue (components that disposed individually) and returns false; entity
// state is untouched.
//
// While the entity is Disposing it drains the queue, then force-releases
// every remaining entry in the map regardless of individual disposing state,
// clears the map and both timestamps, pushes the entity into the pool, and
// returns true. A component whose own Release reports failure during the
// forced pass is still dropped from the map; the entity-level dispose already
// revoked its validity.
func (e *Entity) Release() bool {
	defer statsd.EmitReleaseStat(time.Now(), "entity")

	e.drainPending()

	if e.st.Current() != stage.Disposing {
		return false
	}

	for _, name := range e.order {
		c := e.components[name]
		c.Release()
		c.SetOwner(NoOwner)
	}
	clear(e.components)
	e.order = e.order[:0]

	if e.pendingDisposed != nil {
		e.mgr.bufPool.release(e.pendingDisposed)
		e.pendingDisposed = nil
	}

	e.changedAt = time.Time{}
	e.disposingSince = time.Time{}
	e.mgr.recycle(e)
	return true
}

// drainPending attempts Release on each component queued by the deferred
// disposal tracker. A successful release removes the component from the map
// only when it is still the map's current entry for its name; a Replace may
// have swapped the slot in the meantime. Failed releases stay queued for a
// later pass.
func (e *Entity) drainPending() {
	if e.pendingDisposed == nil {
		return
	}

	kept := e.pendingDisposed[:0]
	for _, c := range e.pendingDisposed {
		if !c.Release() {
			kept = append(kept, c)
			continue
		}
		if current, ok := e.components[c.Name()]; ok && current == c {
			delete(e.components, c.Name())
			e.dropOrder(c.Name())
		}
		c.SetOwner(NoOwner)
	}
	e.pendingDisposed = kept

	if len(kept) == 0 {
		e.mgr.bufPool.release(e.pendingDisposed)
		e.pendingDisposed = nil
	}
}

func (e *Entity) loggableComponents() []log.Component {
	out := make([]log.Component, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, e.components[name])
	}
	return out
}

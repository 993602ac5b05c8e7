package entx_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/helix-engine/entx"
	"github.com/helix-engine/entx/stage"
)

func TestHooksDeliverInRegistrationOrder(t *testing.T) {
	m := newTestManager(t)

	var order []string
	m.OnComponentAdded(func(*entx.Entity, entx.Component) { order = append(order, "first") })
	m.OnComponentAdded(func(*entx.Entity, entx.Component) { order = append(order, "second") })

	m.NewEntity(newTestComp("Position", m.Stream()))
	assert.DeepEqual(t, []string{"first", "second"}, order)
}

func TestComponentAddedFiresAfterMutation(t *testing.T) {
	m := newTestManager(t)

	var sawInStore bool
	var gotEntity *entx.Entity
	m.OnComponentAdded(func(e *entx.Entity, c entx.Component) {
		sawInStore = e.Has(c.Name(), false)
		gotEntity = e
	})

	e := m.NewEntity(newTestComp("Position", m.Stream()))
	assert.Check(t, sawInStore, "the store mutation must be observable inside the hook")
	assert.Check(t, gotEntity == e)
}

func TestComponentRemovedFiresAfterDisposeTrigger(t *testing.T) {
	m := newTestManager(t)
	pos := newTestComp("Position", m.Stream())

	var disposingInHook bool
	m.OnComponentRemoved(func(e *entx.Entity, c entx.Component) {
		_, disposingInHook = c.DisposingSince()
	})

	e := m.NewEntity(pos)
	e.Remove("Position")
	assert.Check(t, disposingInHook)
}

func TestEntityDisposedFiresAsCascadeBegins(t *testing.T) {
	m := newTestManager(t)
	pos := newTestComp("Position", m.Stream())

	var stageInHook stage.Stage
	var cascadeStarted bool
	m.OnEntityDisposed(func(e *entx.Entity) {
		stageInHook = e.Stage()
		cascadeStarted = pos.disposals > 0
	})

	e := m.NewEntity(pos)
	e.Dispose()

	assert.Equal(t, stage.Disposing, stageInHook)
	assert.Check(t, !cascadeStarted, "the hook fires before components are disposed")
}

func TestHookMutationDuringDisposalIsRejected(t *testing.T) {
	m := newTestManager(t)

	m.OnEntityDisposed(func(e *entx.Entity) {
		e.Add(newTestComp("Sneaky", m.Stream()))
	})

	e := m.NewEntity(newTestComp("Position", m.Stream()))
	e.Dispose()
	assert.Check(t, !e.Has("Sneaky", true))
}

package entx

type (
	// ComponentHook observes a component-added or component-removed mutation
	// in the context of the owning entity.
	ComponentHook func(*Entity, Component)

	// EntityHook observes the start of an entity's disposal cascade.
	EntityHook func(*Entity)
)

// OnComponentAdded registers fn to run after a component has been inserted
// into an entity's store. Hooks run synchronously, in registration order, in
// the same call stack as the mutation.
func (m *Manager) OnComponentAdded(fn ComponentHook) {
	m.componentAdded = append(m.componentAdded, fn)
}

// OnComponentRemoved registers fn to run after Remove has triggered disposal
// of a component. The component is still in the store at that point; it
// leaves the map during the next release pass.
func (m *Manager) OnComponentRemoved(fn ComponentHook) {
	m.componentRemoved = append(m.componentRemoved, fn)
}

// OnEntityDisposed registers fn to run once an entity's disposal cascade
// begins, before the contained components are disposed.
func (m *Manager) OnEntityDisposed(fn EntityHook) {
	m.entityDisposed = append(m.entityDisposed, fn)
}

func (m *Manager) fireComponentAdded(e *Entity, c Component) {
	for _, fn := range m.componentAdded {
		fn(e, c)
	}
}

func (m *Manager) fireComponentRemoved(e *Entity, c Component) {
	for _, fn := range m.componentRemoved {
		fn(e, c)
	}
}

func (m *Manager) fireEntityDisposed(e *Entity) {
	for _, fn := range m.entityDisposed {
		fn(e)
	}
}

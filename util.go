package entx

import (
	"errors"

	"github.com/rotisserie/eris"
)

var (
	ErrNilComponent       = errors.New("component must not be nil")
	ErrMissingName        = errors.New("component name must not be empty")
	ErrDuplicateComponent = errors.New("a component with this name is already on the entity")
	ErrComponentReused    = errors.New("component is already attached to this entity")
	ErrForeignOwner       = errors.New("component is owned by another entity")
	ErrEntityDisposing    = errors.New("entity is disposing; mutation rejected")
)

// logAndPanic is for programming errors: API misuse that is not recoverable
// at runtime. The zerolog Panic event panics after the write.
func (m *Manager) logAndPanic(err error) {
	m.logger.Panic().Err(err).Msgf("fatal error: %v", eris.ToString(err, true))
}

func (m *Manager) mustComponent(c Component) {
	if c == nil {
		m.logAndPanic(eris.Wrap(ErrNilComponent, ""))
	}
	if c.Name() == "" {
		m.logAndPanic(eris.Wrap(ErrMissingName, ""))
	}
}

func (m *Manager) mustName(name string) {
	if name == "" {
		m.logAndPanic(eris.Wrap(ErrMissingName, ""))
	}
}

// warnPolicy is for policy violations: common, often benign logic races in
// calling code. The operation becomes a no-op; the diagnostic carries a stack
// trace so the caller can be found.
func (e *Entity) warnPolicy(err error, componentName string) {
	wrapped := eris.Wrap(err, "rejected")
	e.mgr.logger.Warn().
		Uint64("entity_id", uint64(e.id)).
		Str("component_name", componentName).
		Err(err).
		Msg(eris.ToString(wrapped, true))
}

package entx

import (
	"time"

	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

// EntityID identifies a live entity within a Manager. Components carry it as
// their owner handle; it confers no lifetime authority over the entity.
type EntityID uint64

// NoOwner is the owner handle of a component that is not attached to any entity.
const NoOwner EntityID = 0

type (
	// Component is the capability set a type must satisfy to be stored on an
	// Entity. Name doubles as the component type identity: an entity holds at
	// most one component per name at a time.
	Component interface {
		// Name returns the name of the component.
		Name() string
		// Dispose asks the component to give up semantic validity. It must be
		// idempotent and must announce the disposal on its Manager's Stream;
		// resources are reclaimed later by Release.
		Dispose()
		// Release reclaims the component's resources and reports whether the
		// release fully completed. A false return leaves the component on its
		// entity for a later pass.
		Release() bool
		// Changed returns the time of the component's last internal mutation.
		Changed() time.Time
		// DisposingSince returns when Dispose was first triggered and whether
		// it has been triggered at all.
		DisposingSince() (time.Time, bool)
		// Owner returns the ID of the owning entity, or NoOwner.
		Owner() EntityID
		// SetOwner is called by the entity store when the component is adopted
		// or reclaimed. Components must not call it themselves.
		SetOwner(EntityID)
	}

	// DebugStater lets a component customize its debug snapshot. Components
	// that do not implement it are marshaled as-is.
	DebugStater interface {
		DebugState() any
	}
)

// SerializeComponentSchema returns the JSON schema of the component's
// concrete type.
func SerializeComponentSchema(component Component) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	return componentSchema.MarshalJSON()
}

// componentSchemaDiff compares the schemas of two components that share a
// name. An empty result means the shapes match; anything else is rendered
// into the duplicate-add diagnostic.
func componentSchemaDiff(existing, incoming Component) (string, error) {
	existingSchema, err := SerializeComponentSchema(existing)
	if err != nil {
		return "", eris.Wrap(err, "")
	}
	incomingSchema, err := SerializeComponentSchema(incoming)
	if err != nil {
		return "", eris.Wrap(err, "")
	}
	patch, err := jsondiff.CompareJSON(existingSchema, incomingSchema)
	if err != nil {
		return "", eris.Wrap(err, "")
	}
	return patch.String(), nil
}

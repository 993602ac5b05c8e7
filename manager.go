package entx

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/helix-engine/entx/stage"
	"github.com/helix-engine/entx/statsd"
)

// Manager is the process-wide owner of the entity lifecycle: it hands out
// entity IDs, keeps the live-entity registry used to route deferred-disposal
// notifications, and holds both object pools.
//
// The model is single-threaded and fully synchronous: a Manager and every
// entity it owns must be confined to one goroutine. Nothing here suspends or
// yields, so all pool and map mutations are atomic with respect to each
// other. A concurrent variant needs to serialize access to both pools.
type Manager struct {
	instanceID string
	cfg        Config
	logger     zerolog.Logger
	clock      func() time.Time

	nextID   EntityID
	entities map[EntityID]*Entity

	entityPool *entityPool
	bufPool    *bufferPool

	stream *Stream

	componentAdded   []ComponentHook
	componentRemoved []ComponentHook
	entityDisposed   []EntityHook
}

// NewManager loads configuration from the environment, applies the given
// options, and subscribes the deferred-disposal tracker to the Stream.
func NewManager(opts ...Option) (*Manager, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, eris.Wrap(err, "failed to load config")
	}

	m := &Manager{
		instanceID: uuid.NewString(),
		cfg:        cfg,
		clock:      time.Now,
		entities:   map[EntityID]*Entity{},
		stream:     NewStream(),
	}
	m.logger = zerolog.New(os.Stderr).With().
		Timestamp().
		Str("entx_instance", m.instanceID).
		Logger()

	for _, opt := range opts {
		opt(m)
	}

	level, err := zerolog.ParseLevel(m.cfg.LogLevel)
	if err != nil {
		return nil, eris.Wrapf(err, "invalid log level %q", m.cfg.LogLevel)
	}
	m.logger = m.logger.Level(level)

	if m.cfg.StatsdAddress != "" {
		if err := statsd.Init(m.cfg.StatsdAddress, nil); err != nil {
			return nil, eris.Wrap(err, "failed to init statsd")
		}
	}

	m.entityPool = newEntityPool(m.cfg.EntityPoolCapacity)
	m.bufPool = newBufferPool(m.cfg.BufferPoolCapacity)

	m.stream.Subscribe(m.trackDisposed)
	return m, nil
}

// Stream returns the component-disposed notification stream components must
// publish on.
func (m *Manager) Stream() *Stream {
	return m.stream
}

// Config returns the effective configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Logger returns the manager's logger.
func (m *Manager) Logger() *zerolog.Logger {
	return &m.logger
}

// NewEntity constructs a fresh entity and adds each of the given components
// through the normal Add path.
func (m *Manager) NewEntity(components ...Component) *Entity {
	e := &Entity{
		mgr:        m,
		st:         stage.NewHolder(),
		components: map[string]Component{},
	}
	m.adopt(e, components)
	return e
}

// Pooled pops an idle entity and re-initializes it with the given components,
// or constructs a fresh one if the pool is empty. The pool is LIFO: the most
// recently released entity object is handed back out first, under a new ID.
func (m *Manager) Pooled(components ...Component) *Entity {
	e, ok := m.entityPool.acquire()
	statsd.EmitPoolStat("entity", ok)
	if !ok {
		return m.NewEntity(components...)
	}
	m.adopt(e, components)
	return e
}

// Live reports how many entities are currently registered, pooled ones
// excluded.
func (m *Manager) Live() int {
	return len(m.entities)
}

func (m *Manager) adopt(e *Entity, components []Component) {
	m.nextID++
	e.id = m.nextID
	e.st.Store(stage.Active)
	m.entities[e.id] = e
	for _, c := range components {
		e.Add(c)
	}
}

// recycle is called at the end of a successful entity-level release.
func (m *Manager) recycle(e *Entity) {
	delete(m.entities, e.id)
	e.st.Store(stage.Released)
	m.entityPool.release(e)
}

// trackDisposed is the deferred-disposal tracker. It runs on every
// notification from the Stream: components with no owner are ignored, and so
// are components whose entity is itself disposing, since the entity-level
// release pass reclaims those. Everything else is queued on the owning
// entity, lazily borrowing the queue's backing slice from the buffer pool.
func (m *Manager) trackDisposed(c Component) {
	owner := c.Owner()
	if owner == NoOwner {
		return
	}
	e, ok := m.entities[owner]
	if !ok {
		return
	}
	if e.st.Current() != stage.Active {
		return
	}
	if e.pendingDisposed == nil {
		buf, hit := m.bufPool.acquire()
		statsd.EmitPoolStat("buffer", hit)
		e.pendingDisposed = buf
	}
	e.pendingDisposed = append(e.pendingDisposed, c)
}

func (m *Manager) now() time.Time {
	return m.clock()
}

package entx

// Explicit LIFO pools. sync.Pool is deliberately not used here: reuse must be
// deterministic (last released, first acquired) and must survive GC cycles,
// since callers rely on identity reuse to keep allocation churn flat.

type entityPool struct {
	idle []*Entity
	cap  int
}

func newEntityPool(capacity int) *entityPool {
	return &entityPool{
		idle: make([]*Entity, 0, capacity),
		cap:  capacity,
	}
}

func (p *entityPool) acquire() (*Entity, bool) {
	if len(p.idle) == 0 {
		return nil, false
	}
	e := p.idle[len(p.idle)-1]
	p.idle = p.idle[:len(p.idle)-1]
	return e, true
}

func (p *entityPool) release(e *Entity) {
	if len(p.idle) >= p.cap {
		return
	}
	p.idle = append(p.idle, e)
}

// bufferPool reuses the small []Component slices that back an entity's
// deferred-disposal queue.
type bufferPool struct {
	idle [][]Component
	cap  int
}

func newBufferPool(capacity int) *bufferPool {
	return &bufferPool{
		idle: make([][]Component, 0, capacity),
		cap:  capacity,
	}
}

func (p *bufferPool) acquire() ([]Component, bool) {
	if len(p.idle) == 0 {
		return make([]Component, 0, 4), false
	}
	buf := p.idle[len(p.idle)-1]
	p.idle = p.idle[:len(p.idle)-1]
	return buf, true
}

func (p *bufferPool) release(buf []Component) {
	if buf == nil || len(p.idle) >= p.cap {
		return
	}
	// Clear the full backing array, not just the live prefix, so pooled
	// buffers never pin released components.
	buf = buf[:cap(buf)]
	for i := range buf {
		buf[i] = nil
	}
	p.idle = append(p.idle, buf[:0])
}

package entx_test

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/helix-engine/entx"
)

func newTestManager(t *testing.T, opts ...entx.Option) *entx.Manager {
	t.Helper()
	m, err := entx.NewManager(opts...)
	assert.NilError(t, err)
	return m
}

// stepClock hands out strictly increasing timestamps so tests can reason
// about change-stamp ordering without sleeping.
type stepClock struct {
	t time.Time
}

func newStepClock() *stepClock {
	return &stepClock{t: time.Unix(1000, 0)}
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

// testComp is a minimal well-behaved component: Dispose is an idempotent
// trigger that announces itself on the stream, Release succeeds unless the
// test says otherwise.
type testComp struct {
	name       string
	stream     *entx.Stream
	owner      entx.EntityID
	changed    time.Time
	disposedAt time.Time
	disposing  bool
	failNext   bool
	disposals  int
	releases   int
}

func newTestComp(name string, stream *entx.Stream) *testComp {
	return &testComp{name: name, stream: stream}
}

func (c *testComp) Name() string { return c.name }

func (c *testComp) Dispose() {
	c.disposals++
	if c.disposing {
		return
	}
	c.disposing = true
	c.disposedAt = time.Now()
	if c.stream != nil {
		c.stream.Publish(c)
	}
}

func (c *testComp) Release() bool {
	if c.failNext {
		return false
	}
	c.releases++
	c.disposing = false
	return true
}

func (c *testComp) Changed() time.Time { return c.changed }

func (c *testComp) DisposingSince() (time.Time, bool) { return c.disposedAt, c.disposing }

func (c *testComp) Owner() entx.EntityID { return c.owner }

func (c *testComp) SetOwner(id entx.EntityID) { c.owner = id }

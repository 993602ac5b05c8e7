package stage

import (
	"sync/atomic"
)

type Stage string

const (
	Active    Stage = "Active"    // The entity accepts add/remove/replace mutations
	Disposing Stage = "Disposing" // Dispose() has begun; mutations are rejected until release
	Released  Stage = "Released"  // The entity has been reclaimed and sits idle in the pool
)

type Holder struct {
	current *atomic.Value
}

func NewHolder() *Holder {
	h := &Holder{
		current: &atomic.Value{},
	}
	h.Store(Active)
	return h
}

func (h *Holder) CompareAndSwap(oldStage, newStage Stage) (swapped bool) {
	return h.current.CompareAndSwap(oldStage, newStage)
}

func (h *Holder) Current() Stage {
	return h.current.Load().(Stage)
}

func (h *Holder) Store(val Stage) {
	h.current.Store(val)
}

func (h *Holder) Swap(newStage Stage) (oldStage Stage) {
	return h.current.Swap(newStage).(Stage)
}

package stage

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCanOperateOnZeroValue(t *testing.T) {
	holder := NewHolder()
	gotStage := holder.Current()
	assert.Equal(t, Active, gotStage)

	gotStage = holder.Swap(Released)
	assert.Equal(t, Active, gotStage)
}

func TestCanCompareAndSwapOnZeroValue(t *testing.T) {
	holder := NewHolder()
	ok := holder.CompareAndSwap(Released, Released)
	assert.Check(t, !ok, "a fresh holder should be Active")

	ok = holder.CompareAndSwap(Active, Disposing)
	assert.Check(t, ok, "compare and swap should succeed with correct old value")

	assert.Equal(t, Disposing, holder.Current())
}

func TestOnlyOneCompareAndSwapSuccess(t *testing.T) {
	successCh := make(chan bool)
	holder := NewHolder()

	for i := 0; i < 10; i++ {
		go func() {
			ok := holder.CompareAndSwap(Active, Disposing)
			successCh <- ok
		}()
	}

	successCount := 0
	failureCount := 0
	for i := 0; i < 10; i++ {
		if <-successCh {
			successCount++
		} else {
			failureCount++
		}
	}
	assert.Equal(t, 1, successCount)
	assert.Equal(t, 9, failureCount)
}

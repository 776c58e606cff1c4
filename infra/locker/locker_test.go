package locker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocker(t *testing.T) {
	t.Parallel()

	l := New()

	assert.True(t, l.TryLock(1))
	assert.False(t, l.TryLock(1))
	assert.True(t, l.TryLock(2))

	l.Unlock(1)
	assert.True(t, l.TryLock(1))
	assert.False(t, l.TryLock(2))
}

func TestLocker_SingleWinner(t *testing.T) {
	t.Parallel()

	l := New()
	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryLock(7) {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

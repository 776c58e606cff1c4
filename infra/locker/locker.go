package locker

import "sync"

// Locker keeps track of ledger jobs claimed by a worker in this process.
type Locker struct {
	mu           sync.Mutex
	inProcessMap map[int64]bool
}

func New() *Locker {
	return &Locker{
		inProcessMap: make(map[int64]bool),
	}
}

// TryLock claims logID and reports whether it was free.
func (l *Locker) TryLock(logID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inProcessMap[logID] {
		return false
	}
	l.inProcessMap[logID] = true
	return true
}

func (l *Locker) Unlock(logID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inProcessMap, logID)
}

package usecase

import "sync"

// sessionLocks - serializes the load-apply-store cycle of each session so two
// moves on the same session cannot both read the same snapshot. Locks are
// dropped once nobody holds or waits for them.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		locks: make(map[string]*sessionLock),
	}
}

// lock - blocks until the session is free and returns its unlock function.
func (that *sessionLocks) lock(sessionID string) func() {
	that.mu.Lock()
	entry, ok := that.locks[sessionID]
	if !ok {
		entry = &sessionLock{}
		that.locks[sessionID] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, sessionID)
		}
		that.mu.Unlock()
	}
}

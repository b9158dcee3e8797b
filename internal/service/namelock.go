package service

import "sync"

// nameLock serializes lifecycle operations per partition name. Keys are
// normalized names, so two spellings of the same organization contend on the
// same lock. Entries are reference counted and removed when idle.
type nameLock struct {
	mu    sync.Mutex
	locks map[string]*nameLockEntry
}

type nameLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newNameLock() *nameLock {
	return &nameLock{locks: make(map[string]*nameLockEntry)}
}

func (l *nameLock) lock(key string) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &nameLockEntry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

func (l *nameLock) unlock(key string) {
	l.mu.Lock()
	e := l.locks[key]
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()

	e.mu.Unlock()
}

// lockPair acquires two keys in lexicographic order so concurrent renames
// cannot deadlock against each other.
func (l *nameLock) lockPair(a, b string) {
	if a == b {
		l.lock(a)
		return
	}
	if a > b {
		a, b = b, a
	}
	l.lock(a)
	l.lock(b)
}

func (l *nameLock) unlockPair(a, b string) {
	if a == b {
		l.unlock(a)
		return
	}
	if a > b {
		a, b = b, a
	}
	l.unlock(b)
	l.unlock(a)
}

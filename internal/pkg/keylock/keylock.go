package keylock

import "sync"

// Map hands out one mutex per key. It backs the single-writer discipline:
// one logical lock per user for like/seen/notification mutations and one per
// canonical pair key for conversation appends.
type Map struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New() *Map {
	return &Map{locks: map[string]*sync.Mutex{}}
}

// Lock acquires the mutex for key and returns its unlock func. Locks are
// kept for the lifetime of the map; the key space here is bounded by the
// user population.
func (m *Map) Lock(key string) func() {
	m.mu.Lock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// LockPair acquires both keys in sorted order so two goroutines locking the
// same pair from opposite directions cannot deadlock.
func (m *Map) LockPair(a, b string) func() {
	if b < a {
		a, b = b, a
	}
	if a == b {
		return m.Lock(a)
	}

	unlockA := m.Lock(a)
	unlockB := m.Lock(b)
	return func() {
		unlockB()
		unlockA()
	}
}

package house

import "sync"

// entityLockStore serializes operations per entity id: concurrent calls on
// different ids proceed independently, same-id calls are mutually exclusive.
// Pool operations always take the pool lock before any member lock.
type entityLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newEntityLockStore() *entityLockStore {
	return &entityLockStore{locks: make(map[string]*sync.Mutex)}
}

func (s *entityLockStore) get(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[id]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

// lockEntity locks id and returns the unlock.
func (i *House) lockEntity(id string) func() {
	lock := i.locks.get(id)
	lock.Lock()
	return lock.Unlock
}

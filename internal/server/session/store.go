package session

import "sync"

// Store holds per-caller sessions. State is scoped strictly to one
// caller; losing it on restart is accepted.
type Store interface {
	Get(callerID int64) Session
	Put(callerID int64, s Session)
	Reset(callerID int64)
}

// MemoryStore is a concurrency-safe in-process Store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]Session)}
}

func (s *MemoryStore) Get(callerID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[callerID]
}

func (s *MemoryStore) Put(callerID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[callerID] = sess
}

func (s *MemoryStore) Reset(callerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, callerID)
}

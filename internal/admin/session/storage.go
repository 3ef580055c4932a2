package session

import (
	"context"
	"sync"

	"github.com/alexedwards/scs/v2"
)

// Storage is the key/value backing of a Context.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStorage keeps values in process memory.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// ScsStorage reads and writes the browser session loaded into ctx by
// scs.SessionManager.LoadAndSave.
type ScsStorage struct {
	sm  *scs.SessionManager
	ctx context.Context
}

func NewScsStorage(sm *scs.SessionManager, ctx context.Context) *ScsStorage {
	return &ScsStorage{sm: sm, ctx: ctx}
}

func (s *ScsStorage) Get(key string) (string, bool) {
	if !s.sm.Exists(s.ctx, key) {
		return "", false
	}
	return s.sm.GetString(s.ctx, key), true
}

func (s *ScsStorage) Set(key, value string) {
	s.sm.Put(s.ctx, key, value)
}

func (s *ScsStorage) Delete(key string) {
	s.sm.Remove(s.ctx, key)
}

// Package session tracks the authoritative text of open documents.
//
// The store is the only shared mutable state in the server: notifications
// write it, every query reads it. Queries take exactly one snapshot per
// request and never hold a reference into the map, so a concurrent change
// can never corrupt the value a handler is working from.
package session

import "sync"

// Store maps a document identifier (its URI) to the current full text.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{docs: make(map[string]string)}
}

// Open inserts or replaces the session for id.
func (s *Store) Open(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = text
}

// Change replaces the text for id with the latest full text. An unknown id
// is created rather than rejected: a query racing ahead of the open
// notification must not crash the server.
func (s *Store) Change(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = text
}

// Read returns a snapshot of the current text, or false if the document is
// not open.
func (s *Store) Read(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[id]
	return text, ok
}

// Close removes the session. Missing entries are tolerated.
func (s *Store) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Package session keeps each user's currently uploaded document text in
// memory. Sessions live only as long as the process; callers must expect
// them to vanish on restart.
package session

import (
	"sync"

	"github.com/bhanuteja449896/AskMyFile/pkg/model"
)

// Store maps a user to their active document. One entry per user, latest
// upload wins. There is no eviction; growth is bounded only by memory and
// the number of distinct active users.
type Store struct {
	mu   sync.RWMutex
	docs map[model.UserID]*model.Document
}

func NewStore() *Store {
	return &Store{
		docs: make(map[model.UserID]*model.Document),
	}
}

// Put replaces any prior document for the user. Last write wins, no merge.
func (s *Store) Put(user model.UserID, doc *model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[user] = doc
}

// Get returns the user's active document. A missing session is not an
// error; it signals that the user must upload a file first.
func (s *Store) Get(user model.UserID) (*model.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[user]
	return doc, ok
}

// Len reports the number of active sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

package store

import (
	"sync"

	"internship-management-api/models"
)

// UserStore holds the seeded accounts used for login.
type UserStore struct {
	mu    sync.Mutex
	items []models.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Add appends the user, assigning an id when absent.
func (s *UserStore) Add(draft models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if draft.UserID == "" {
		draft.UserID = newID()
	}
	s.items = append(s.items, draft)
	return draft
}

// ByEmail returns the user with the given email, if any.
func (s *UserStore) ByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// GetByID returns the user and true, or a zero value and false.
func (s *UserStore) GetByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.items {
		if u.UserID == id {
			return u, true
		}
	}
	return models.User{}, false
}

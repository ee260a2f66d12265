package store

import (
	"sync"
	"time"

	"internship-management-api/models"
)

// NotificationStore holds per-user notifications in insertion order.
type NotificationStore struct {
	mu    sync.Mutex
	items []models.Notification
	bus   *Bus
}

func NewNotificationStore(bus *Bus) *NotificationStore {
	return &NotificationStore{bus: bus}
}

// Add assigns id and timestamp and appends the notification.
func (s *NotificationStore) Add(draft models.Notification) models.Notification {
	s.mu.Lock()
	draft.NotificationID = newID()
	draft.CreatedAt = time.Now()
	s.items = append(s.items, draft)
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "notification", Op: OpCreated, ID: draft.NotificationID})
	return draft
}

// ByUser returns the user's notifications in insertion order.
func (s *NotificationStore) ByUser(userID string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, 0)
	for _, n := range s.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead flags the notification as read; no-op when absent.
func (s *NotificationStore) MarkRead(id string) {
	s.mu.Lock()
	marked := false
	for i := range s.items {
		if s.items[i].NotificationID == id {
			s.items[i].IsRead = true
			marked = true
			break
		}
	}
	s.mu.Unlock()

	if marked {
		s.bus.Publish(Event{Entity: "notification", Op: OpUpdated, ID: id})
	}
}

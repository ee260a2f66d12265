// Package store holds the authoritative in-memory collections behind the
// internship management panels. State lives for the process lifetime
// only; construct one Stores value per server (or per test) and pass it
// by reference to consumers.
package store

// Stores bundles every entity collection around one shared event bus.
type Stores struct {
	Applications  *ApplicationStore
	Logs          *LogStore
	Jobs          *JobStore
	Interns       *InternStore
	Users         *UserStore
	Notifications *NotificationStore
	Events        *Bus
}

func NewStores() *Stores {
	bus := NewBus()
	return &Stores{
		Applications:  NewApplicationStore(bus),
		Logs:          NewLogStore(bus),
		Jobs:          NewJobStore(bus),
		Interns:       NewInternStore(bus),
		Users:         NewUserStore(),
		Notifications: NewNotificationStore(bus),
		Events:        bus,
	}
}

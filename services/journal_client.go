package services

import (
	"sync"
	"time"

	"internship-management-api/models"
)

// JournalEntry is the record shape of the journal service boundary. The
// boundary predates the log store and keeps its own integer ids and
// per-entry status.
type JournalEntry struct {
	ID      int                    `json:"id"`
	Date    string                 `json:"date"`
	Content string                 `json:"content"`
	Status  models.LifecycleStatus `json:"status"`
}

// JournalClient simulates the slow external journal source. Each call
// waits out the configured latency before touching state, so two
// overlapping calls resolve in completion order and the later one simply
// overwrites; callers must not assume ordering between overlapping
// calls. There is no cancellation and no retry.
type JournalClient struct {
	mu      sync.Mutex
	delay   time.Duration
	nextID  int
	entries []JournalEntry
	now     func() time.Time
}

// NewJournalClient returns a client with one seeded entry, mirroring the
// data source it stands in for.
func NewJournalClient(delay time.Duration) *JournalClient {
	return &JournalClient{
		delay:  delay,
		nextID: 2,
		entries: []JournalEntry{
			{ID: 1, Date: "2025-04-21", Content: "Set up the project today.", Status: models.StatusPending},
		},
		now: time.Now,
	}
}

// FetchLogs returns a copy of the student's current journal entries.
func (c *JournalClient) FetchLogs() []JournalEntry {
	time.Sleep(c.delay)
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]JournalEntry(nil), c.entries...)
}

// AddLog prepends a new pending entry dated today and returns it.
func (c *JournalClient) AddLog(content string) JournalEntry {
	time.Sleep(c.delay)
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := JournalEntry{
		ID:      c.nextID,
		Date:    c.now().Format("2006-01-02"),
		Content: content,
		Status:  models.StatusPending,
	}
	c.nextID++
	c.entries = append([]JournalEntry{entry}, c.entries...)
	return entry
}

// FetchAllLogs returns every entry for the review panel.
func (c *JournalClient) FetchAllLogs() []JournalEntry {
	return c.FetchLogs()
}

// UpdateLogStatus sets the entry's status and returns the updated entry.
// An unknown id returns false.
func (c *JournalClient) UpdateLogStatus(id int, status models.LifecycleStatus) (JournalEntry, bool) {
	time.Sleep(c.delay)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Status = status
			return c.entries[i], true
		}
	}
	return JournalEntry{}, false
}

package store

import (
	"sync"

	"internship-management-api/models"
)

// LogStore holds internship journals in insertion order. A log is keyed
// by the internship it belongs to, so Add keeps a caller-supplied id when
// one is present (the journal page creates the log lazily under the
// internship's id on first save).
type LogStore struct {
	mu    sync.Mutex
	items []models.Log
	bus   *Bus
}

func NewLogStore(bus *Bus) *LogStore {
	return &LogStore{bus: bus}
}

// LogPatch carries a partial update; nil fields are left alone. Entries
// replaces the whole sequence.
type LogPatch struct {
	StudentName   *string
	StudentNumber *string
	Department    *string
	Company       *string
	StartDate     *string
	EndDate       *string
	Status        *models.LifecycleStatus
	Entries       *[]models.Entry
}

// Add appends the log with status forced to pending. A missing id is
// generated; entry ids are filled in for entries that lack one.
func (s *LogStore) Add(draft models.Log) models.Log {
	s.mu.Lock()
	if draft.LogID == "" {
		draft.LogID = newID()
	}
	draft.Status = models.StatusPending
	for i := range draft.Entries {
		if draft.Entries[i].EntryID == "" {
			draft.Entries[i].EntryID = newID()
		}
	}
	s.items = append(s.items, cloneLog(draft))
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "log", Op: OpCreated, ID: draft.LogID})
	return draft
}

// Update merges the patch into the record with the given id. A missing id
// is a silent no-op.
func (s *LogStore) Update(id string, patch LogPatch) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	log := &s.items[i]
	setString(&log.StudentName, patch.StudentName)
	setString(&log.StudentNumber, patch.StudentNumber)
	setString(&log.Department, patch.Department)
	setString(&log.Company, patch.Company)
	setString(&log.StartDate, patch.StartDate)
	setString(&log.EndDate, patch.EndDate)
	if patch.Status != nil {
		log.Status = *patch.Status
	}
	if patch.Entries != nil {
		log.Entries = append([]models.Entry(nil), (*patch.Entries)...)
		for j := range log.Entries {
			if log.Entries[j].EntryID == "" {
				log.Entries[j].EntryID = newID()
			}
		}
	}
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "log", Op: OpUpdated, ID: id})
}

// RemoveEntry drops one entry from the log's sequence. A log keeps at
// least one entry: removal is a no-op when only one remains, as is a
// missing log or entry id.
func (s *LogStore) RemoveEntry(logID, entryID string) {
	s.mu.Lock()
	i := s.indexOf(logID)
	if i < 0 || len(s.items[i].Entries) <= 1 {
		s.mu.Unlock()
		return
	}
	entries := s.items[i].Entries
	removed := false
	for j := range entries {
		if entries[j].EntryID == entryID {
			s.items[i].Entries = append(entries[:j:j], entries[j+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.bus.Publish(Event{Entity: "log", Op: OpUpdated, ID: logID})
	}
}

// Decide implements ReviewStore.
func (s *LogStore) Decide(id string, target models.LifecycleStatus) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	if err := checkDecision(s.items[i].Status, target); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items[i].Status = target
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "log", Op: OpUpdated, ID: id})
	return nil
}

// GetByID returns the record and true, or a zero value and false.
func (s *LogStore) GetByID(id string) (models.Log, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneLog(s.items[i]), true
	}
	return models.Log{}, false
}

// All returns an insertion-ordered snapshot.
func (s *LogStore) All() []models.Log {
	return s.Filter(func(models.Log) bool { return true })
}

// ByStudent returns the student's logs in insertion order.
func (s *LogStore) ByStudent(studentID string) []models.Log {
	return s.Filter(func(l models.Log) bool { return l.StudentID == studentID })
}

// Filter returns an insertion-ordered snapshot of the matching records.
func (s *LogStore) Filter(keep func(models.Log) bool) []models.Log {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Log, 0, len(s.items))
	for _, l := range s.items {
		if keep(l) {
			out = append(out, cloneLog(l))
		}
	}
	return out
}

func (s *LogStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].LogID == id {
			return i
		}
	}
	return -1
}

func cloneLog(l models.Log) models.Log {
	l.Entries = append([]models.Entry(nil), l.Entries...)
	return l
}

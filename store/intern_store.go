package store

import (
	"errors"
	"sync"

	"internship-management-api/models"
)

var (
	// ErrReportMissing blocks evaluation while the intern's journal is
	// incomplete.
	ErrReportMissing = errors.New("internship report is missing")

	// ErrAlreadyEvaluated signals a second evaluation attempt.
	ErrAlreadyEvaluated = errors.New("intern already evaluated")
)

// InternStore holds the company-facing review aggregates.
type InternStore struct {
	mu    sync.Mutex
	items []models.Intern
	bus   *Bus
}

func NewInternStore(bus *Bus) *InternStore {
	return &InternStore{bus: bus}
}

// Add appends the intern record, assigning an id when absent.
func (s *InternStore) Add(draft models.Intern) models.Intern {
	s.mu.Lock()
	if draft.InternID == "" {
		draft.InternID = newID()
	}
	s.items = append(s.items, cloneIntern(draft))
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "intern", Op: OpCreated, ID: draft.InternID})
	return draft
}

// SaveEvaluation records the company verdict and marks the intern
// approved. It fails while the report is missing, and once a verdict
// exists.
func (s *InternStore) SaveEvaluation(id string, eval models.Evaluation) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	switch {
	case s.items[i].Status == models.ReviewReportMissing:
		s.mu.Unlock()
		return ErrReportMissing
	case s.items[i].Status == models.ReviewApproved || s.items[i].Evaluation != nil:
		s.mu.Unlock()
		return ErrAlreadyEvaluated
	}
	s.items[i].Status = models.ReviewApproved
	s.items[i].Evaluation = &eval
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "intern", Op: OpUpdated, ID: id})
	return nil
}

// GetByID returns the record and true, or a zero value and false.
func (s *InternStore) GetByID(id string) (models.Intern, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneIntern(s.items[i]), true
	}
	return models.Intern{}, false
}

// All returns an insertion-ordered snapshot.
func (s *InternStore) All() []models.Intern {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Intern, 0, len(s.items))
	for _, intern := range s.items {
		out = append(out, cloneIntern(intern))
	}
	return out
}

func (s *InternStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].InternID == id {
			return i
		}
	}
	return -1
}

func cloneIntern(in models.Intern) models.Intern {
	if in.Evaluation != nil {
		eval := *in.Evaluation
		in.Evaluation = &eval
	}
	return in
}

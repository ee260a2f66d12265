package store

import (
	"sync"

	"internship-management-api/models"
)

// ApplicationStore holds internship applications in insertion order.
// Reads hand out copies, so a snapshot taken before a mutation never
// observes it.
type ApplicationStore struct {
	mu    sync.Mutex
	items []models.Application
	bus   *Bus
}

func NewApplicationStore(bus *Bus) *ApplicationStore {
	return &ApplicationStore{bus: bus}
}

// ApplicationPatch carries a partial update; nil fields are left alone.
// Slice fields are overwritten wholesale, never merged.
type ApplicationPatch struct {
	StudentName        *string
	StudentNumber      *string
	Department         *string
	CompanyName        *string
	CompanyAddress     *string
	CompanyPhone       *string
	CompanyEmail       *string
	StartDate          *string
	EndDate            *string
	SupervisorName     *string
	SupervisorTitle    *string
	SupervisorEmail    *string
	SupervisorPhone    *string
	ProjectTitle       *string
	ProjectDescription *string
	LearningObjectives *[]string
	Status             *models.LifecycleStatus
}

// Add assigns a fresh identifier, forces the status to pending and
// appends the record. It never fails under normal input.
func (s *ApplicationStore) Add(draft models.Application) models.Application {
	s.mu.Lock()
	draft.ApplicationID = newID()
	draft.Status = models.StatusPending
	s.items = append(s.items, cloneApplication(draft))
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "application", Op: OpCreated, ID: draft.ApplicationID})
	return draft
}

// Update merges the patch into the record with the given id. A missing id
// is a silent no-op.
func (s *ApplicationStore) Update(id string, patch ApplicationPatch) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	app := &s.items[i]
	setString(&app.StudentName, patch.StudentName)
	setString(&app.StudentNumber, patch.StudentNumber)
	setString(&app.Department, patch.Department)
	setString(&app.CompanyName, patch.CompanyName)
	setString(&app.CompanyAddress, patch.CompanyAddress)
	setString(&app.CompanyPhone, patch.CompanyPhone)
	setString(&app.CompanyEmail, patch.CompanyEmail)
	setString(&app.StartDate, patch.StartDate)
	setString(&app.EndDate, patch.EndDate)
	setString(&app.SupervisorName, patch.SupervisorName)
	setString(&app.SupervisorTitle, patch.SupervisorTitle)
	setString(&app.SupervisorEmail, patch.SupervisorEmail)
	setString(&app.SupervisorPhone, patch.SupervisorPhone)
	setString(&app.ProjectTitle, patch.ProjectTitle)
	setString(&app.ProjectDescription, patch.ProjectDescription)
	if patch.LearningObjectives != nil {
		app.LearningObjectives = append([]string(nil), (*patch.LearningObjectives)...)
	}
	if patch.Status != nil {
		app.Status = *patch.Status
	}
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "application", Op: OpUpdated, ID: id})
}

// Decide implements ReviewStore.
func (s *ApplicationStore) Decide(id string, target models.LifecycleStatus) error {
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

	s.bus.Publish(Event{Entity: "application", Op: OpUpdated, ID: id})
	return nil
}

// GetByID returns the record and true, or a zero value and false.
func (s *ApplicationStore) GetByID(id string) (models.Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneApplication(s.items[i]), true
	}
	return models.Application{}, false
}

// All returns an insertion-ordered snapshot.
func (s *ApplicationStore) All() []models.Application {
	return s.Filter(func(models.Application) bool { return true })
}

// ByStudent returns the student's applications in insertion order.
func (s *ApplicationStore) ByStudent(studentID string) []models.Application {
	return s.Filter(func(a models.Application) bool { return a.StudentID == studentID })
}

// Filter returns an insertion-ordered snapshot of the matching records.
func (s *ApplicationStore) Filter(keep func(models.Application) bool) []models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Application, 0, len(s.items))
	for _, a := range s.items {
		if keep(a) {
			out = append(out, cloneApplication(a))
		}
	}
	return out
}

func (s *ApplicationStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ApplicationID == id {
			return i
		}
	}
	return -1
}

func cloneApplication(a models.Application) models.Application {
	a.LearningObjectives = append([]string(nil), a.LearningObjectives...)
	return a
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

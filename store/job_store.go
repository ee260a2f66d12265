package store

import (
	"sync"

	"internship-management-api/models"
)

// JobStore holds company postings in insertion order. Postings carry no
// review lifecycle; the caller supplies active/closed.
type JobStore struct {
	mu    sync.Mutex
	items []models.Job
	bus   *Bus
}

func NewJobStore(bus *Bus) *JobStore {
	return &JobStore{bus: bus}
}

// JobPatch carries a partial update; nil fields are left alone.
// CompanyDetails is overwritten as a whole snapshot, never deep-merged.
type JobPatch struct {
	Company             *string
	Title               *string
	Description         *string
	Requirements        *[]string
	Location            *string
	StartDate           *string
	EndDate             *string
	ApplicationDeadline *string
	Status              *models.JobStatus
	CompanyDetails      *models.CompanyDetails
}

// Add assigns a fresh identifier and appends the posting. An empty status
// defaults to active.
func (s *JobStore) Add(draft models.Job) models.Job {
	s.mu.Lock()
	draft.JobID = newID()
	if draft.Status == "" {
		draft.Status = models.JobActive
	}
	s.items = append(s.items, cloneJob(draft))
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "job", Op: OpCreated, ID: draft.JobID})
	return draft
}

// Update merges the patch into the posting with the given id. A missing
// id is a silent no-op.
func (s *JobStore) Update(id string, patch JobPatch) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	job := &s.items[i]
	setString(&job.Company, patch.Company)
	setString(&job.Title, patch.Title)
	setString(&job.Description, patch.Description)
	if patch.Requirements != nil {
		job.Requirements = append([]string(nil), (*patch.Requirements)...)
	}
	setString(&job.Location, patch.Location)
	setString(&job.StartDate, patch.StartDate)
	setString(&job.EndDate, patch.EndDate)
	setString(&job.ApplicationDeadline, patch.ApplicationDeadline)
	if patch.Status != nil {
		job.Status = *patch.Status
	}
	if patch.CompanyDetails != nil {
		details := *patch.CompanyDetails
		job.CompanyDetails = &details
	}
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "job", Op: OpUpdated, ID: id})
}

// Remove filters the posting out of the collection; no-op when absent.
func (s *JobStore) Remove(id string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.mu.Unlock()

	s.bus.Publish(Event{Entity: "job", Op: OpDeleted, ID: id})
}

// GetByID returns the posting and true, or a zero value and false.
func (s *JobStore) GetByID(id string) (models.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneJob(s.items[i]), true
	}
	return models.Job{}, false
}

// All returns an insertion-ordered snapshot.
func (s *JobStore) All() []models.Job {
	return s.Filter(func(models.Job) bool { return true })
}

// ByCompany returns the company's postings in insertion order.
func (s *JobStore) ByCompany(company string) []models.Job {
	return s.Filter(func(j models.Job) bool { return j.Company == company })
}

// Filter returns an insertion-ordered snapshot of the matching postings.
func (s *JobStore) Filter(keep func(models.Job) bool) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Job, 0, len(s.items))
	for _, j := range s.items {
		if keep(j) {
			out = append(out, cloneJob(j))
		}
	}
	return out
}

func (s *JobStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].JobID == id {
			return i
		}
	}
	return -1
}

func cloneJob(j models.Job) models.Job {
	j.Requirements = append([]string(nil), j.Requirements...)
	if j.CompanyDetails != nil {
		details := *j.CompanyDetails
		j.CompanyDetails = &details
	}
	return j
}

package store

import (
	"testing"

	"internship-management-api/models"
)

func newTestJobStore() *JobStore {
	return NewJobStore(NewBus())
}

func TestJobAddDefaultsToActive(t *testing.T) {
	s := newTestJobStore()

	created := s.Add(models.Job{Title: "Backend Intern"})
	if created.Status != models.JobActive {
		t.Fatalf("expected active default, got %q", created.Status)
	}

	closed := s.Add(models.Job{Title: "Old Posting", Status: models.JobClosed})
	if closed.Status != models.JobClosed {
		t.Fatalf("expected caller-supplied status kept, got %q", closed.Status)
	}
}

func TestJobRemove(t *testing.T) {
	s := newTestJobStore()
	a := s.Add(models.Job{Title: "one"})
	b := s.Add(models.Job{Title: "two"})

	s.Remove(a.JobID)

	all := s.All()
	if len(all) != 1 || all[0].JobID != b.JobID {
		t.Fatalf("unexpected collection after remove: %+v", all)
	}

	// Absent id is a no-op.
	s.Remove("nonexistent")
	if len(s.All()) != 1 {
		t.Fatalf("remove of unknown id changed the collection")
	}
}

func TestJobUpdateOverwritesCompanyDetailsSnapshot(t *testing.T) {
	s := newTestJobStore()
	created := s.Add(models.Job{
		Title: "Backend Intern",
		CompanyDetails: &models.CompanyDetails{
			Address: "Old Street 1",
			Phone:   "111",
			Website: "https://old.example.com",
		},
	})

	s.Update(created.JobID, JobPatch{
		CompanyDetails: &models.CompanyDetails{Address: "New Street 2"},
	})

	got, _ := s.GetByID(created.JobID)
	if got.CompanyDetails.Address != "New Street 2" {
		t.Fatalf("expected new address, got %q", got.CompanyDetails.Address)
	}
	// The snapshot is overwritten as a whole, not deep-merged.
	if got.CompanyDetails.Phone != "" || got.CompanyDetails.Website != "" {
		t.Fatalf("expected old detail fields dropped, got %+v", got.CompanyDetails)
	}
}

func TestJobSnapshotDetailIsolation(t *testing.T) {
	s := newTestJobStore()
	created := s.Add(models.Job{
		Title:          "Backend Intern",
		Requirements:   []string{"Go"},
		CompanyDetails: &models.CompanyDetails{Address: "Street 1"},
	})

	snapshot, _ := s.GetByID(created.JobID)
	snapshot.Requirements[0] = "hacked"
	snapshot.CompanyDetails.Address = "hacked"

	fresh, _ := s.GetByID(created.JobID)
	if fresh.Requirements[0] != "Go" || fresh.CompanyDetails.Address != "Street 1" {
		t.Fatalf("snapshot mutation leaked into the store: %+v", fresh)
	}
}

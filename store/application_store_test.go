package store

import (
	"testing"

	"internship-management-api/models"
)

func newTestApplicationStore() *ApplicationStore {
	return NewApplicationStore(NewBus())
}

func TestAddAssignsUniqueIDsAndPendingStatus(t *testing.T) {
	s := newTestApplicationStore()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		created := s.Add(models.Application{StudentID: "stu-1", Status: models.StatusApproved})
		if created.ApplicationID == "" {
			t.Fatalf("expected a generated id")
		}
		if seen[created.ApplicationID] {
			t.Fatalf("duplicate id %q after %d adds", created.ApplicationID, i+1)
		}
		seen[created.ApplicationID] = true
		if created.Status != models.StatusPending {
			t.Fatalf("expected status forced to pending, got %q", created.Status)
		}
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	s := newTestApplicationStore()

	first := s.Add(models.Application{ProjectTitle: "first"})
	second := s.Add(models.Application{ProjectTitle: "second"})
	third := s.Add(models.Application{ProjectTitle: "third"})

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 applications, got %d", len(all))
	}
	for i, want := range []string{first.ApplicationID, second.ApplicationID, third.ApplicationID} {
		if all[i].ApplicationID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, all[i].ApplicationID)
		}
	}
}

func TestUpdateIsIdempotentOnIdenticalPayload(t *testing.T) {
	s := newTestApplicationStore()
	created := s.Add(models.Application{ProjectTitle: "old title"})

	title := "new title"
	objectives := []string{"learn Go", "learn SQL"}
	patch := ApplicationPatch{ProjectTitle: &title, LearningObjectives: &objectives}

	s.Update(created.ApplicationID, patch)
	once, _ := s.GetByID(created.ApplicationID)

	s.Update(created.ApplicationID, patch)
	twice, _ := s.GetByID(created.ApplicationID)

	if once.ProjectTitle != twice.ProjectTitle || once.ProjectTitle != "new title" {
		t.Fatalf("expected identical title after repeated update, got %q then %q", once.ProjectTitle, twice.ProjectTitle)
	}
	if len(twice.LearningObjectives) != 2 || twice.LearningObjectives[1] != "learn SQL" {
		t.Fatalf("unexpected objectives after repeated update: %v", twice.LearningObjectives)
	}
}

func TestUpdateMissingIDIsSilentNoOp(t *testing.T) {
	s := newTestApplicationStore()
	created := s.Add(models.Application{ProjectTitle: "keep me"})

	title := "changed"
	s.Update("nonexistent", ApplicationPatch{ProjectTitle: &title})

	all := s.All()
	if len(all) != 1 {
		t.Fatalf("expected collection unchanged, got %d records", len(all))
	}
	if all[0].ApplicationID != created.ApplicationID || all[0].ProjectTitle != "keep me" {
		t.Fatalf("record mutated by update on missing id: %+v", all[0])
	}
}

func TestSnapshotsDoNotObserveLaterMutations(t *testing.T) {
	s := newTestApplicationStore()
	created := s.Add(models.Application{ProjectTitle: "before", LearningObjectives: []string{"a"}})

	snapshot := s.All()

	title := "after"
	objectives := []string{"b", "c"}
	s.Update(created.ApplicationID, ApplicationPatch{ProjectTitle: &title, LearningObjectives: &objectives})

	if snapshot[0].ProjectTitle != "before" {
		t.Fatalf("snapshot observed a later update: %q", snapshot[0].ProjectTitle)
	}
	if len(snapshot[0].LearningObjectives) != 1 || snapshot[0].LearningObjectives[0] != "a" {
		t.Fatalf("snapshot slice observed a later update: %v", snapshot[0].LearningObjectives)
	}

	// Mutating the snapshot must not leak back into the store.
	snapshot[0].LearningObjectives[0] = "hacked"
	fresh, _ := s.GetByID(created.ApplicationID)
	if fresh.LearningObjectives[0] == "hacked" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}

func TestApproveAndRejectFromPending(t *testing.T) {
	s := newTestApplicationStore()

	a := s.Add(models.Application{StudentID: "stu-1"})
	if err := Approve(s, a.ApplicationID); err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	got, _ := s.GetByID(a.ApplicationID)
	if got.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %q", got.Status)
	}

	b := s.Add(models.Application{StudentID: "stu-2"})
	if err := Reject(s, b.ApplicationID); err != nil {
		t.Fatalf("reject returned error: %v", err)
	}
	got, _ = s.GetByID(b.ApplicationID)
	if got.Status != models.StatusRejected {
		t.Fatalf("expected rejected, got %q", got.Status)
	}

	// The decision is visible in the very next full read.
	for _, app := range s.All() {
		if app.Status == models.StatusPending {
			t.Fatalf("expected no pending applications, found %q", app.ApplicationID)
		}
	}
}

func TestDecideGuardsAlreadyDecidedAndMissing(t *testing.T) {
	s := newTestApplicationStore()
	a := s.Add(models.Application{})

	if err := Approve(s, a.ApplicationID); err != nil {
		t.Fatalf("first approve returned error: %v", err)
	}
	if err := Reject(s, a.ApplicationID); err != ErrAlreadyDecided {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
	got, _ := s.GetByID(a.ApplicationID)
	if got.Status != models.StatusApproved {
		t.Fatalf("second decision changed the status to %q", got.Status)
	}

	if err := Approve(s, "nonexistent"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Decide(a.ApplicationID, models.StatusPending); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestByStudentFiltersInInsertionOrder(t *testing.T) {
	s := newTestApplicationStore()
	s.Add(models.Application{StudentID: "stu-1", ProjectTitle: "one"})
	s.Add(models.Application{StudentID: "stu-2", ProjectTitle: "other"})
	s.Add(models.Application{StudentID: "stu-1", ProjectTitle: "two"})

	mine := s.ByStudent("stu-1")
	if len(mine) != 2 || mine[0].ProjectTitle != "one" || mine[1].ProjectTitle != "two" {
		t.Fatalf("unexpected student filter result: %+v", mine)
	}
}

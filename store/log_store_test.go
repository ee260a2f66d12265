package store

import (
	"testing"

	"internship-management-api/models"
)

func newTestLogStore() *LogStore {
	return NewLogStore(NewBus())
}

func TestLogAddKeepsCallerSuppliedID(t *testing.T) {
	s := newTestLogStore()

	created := s.Add(models.Log{
		LogID:   "internship-7",
		Entries: []models.Entry{{Date: "2026-06-01", Content: "first day"}},
	})
	if created.LogID != "internship-7" {
		t.Fatalf("expected supplied id kept, got %q", created.LogID)
	}
	if created.Status != models.StatusPending {
		t.Fatalf("expected pending, got %q", created.Status)
	}
	if created.Entries[0].EntryID == "" {
		t.Fatalf("expected entry id filled in")
	}

	generated := s.Add(models.Log{Entries: []models.Entry{{Date: "2026-06-01", Content: "x"}}})
	if generated.LogID == "" {
		t.Fatalf("expected generated id for empty LogID")
	}
}

func TestRemoveEntryKeepsAtLeastOne(t *testing.T) {
	s := newTestLogStore()
	created := s.Add(models.Log{
		Entries: []models.Entry{{Date: "2026-06-01", Content: "only entry"}},
	})
	entryID := created.Entries[0].EntryID

	s.RemoveEntry(created.LogID, entryID)

	got, _ := s.GetByID(created.LogID)
	if len(got.Entries) != 1 {
		t.Fatalf("expected removal of the only entry to be a no-op, got %d entries", len(got.Entries))
	}
}

func TestRemoveEntryDropsOneWhenSeveralRemain(t *testing.T) {
	s := newTestLogStore()
	created := s.Add(models.Log{
		Entries: []models.Entry{
			{Date: "2026-06-01", Content: "day one"},
			{Date: "2026-06-02", Content: "day two"},
			{Date: "2026-06-03", Content: "day three"},
		},
	})

	s.RemoveEntry(created.LogID, created.Entries[1].EntryID)

	got, _ := s.GetByID(created.LogID)
	if len(got.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.Entries))
	}
	if got.Entries[0].Content != "day one" || got.Entries[1].Content != "day three" {
		t.Fatalf("unexpected entries after removal: %+v", got.Entries)
	}

	// Unknown entry id is a no-op.
	s.RemoveEntry(created.LogID, "nonexistent")
	got, _ = s.GetByID(created.LogID)
	if len(got.Entries) != 2 {
		t.Fatalf("removal of unknown entry changed the sequence")
	}
}

func TestUpdateReplacesEntrySequenceWholesale(t *testing.T) {
	s := newTestLogStore()
	created := s.Add(models.Log{
		Entries: []models.Entry{{Date: "2026-06-01", Content: "draft"}},
	})

	replacement := []models.Entry{
		{Date: "2026-06-01", Content: "rewritten"},
		{Date: "2026-06-02", Content: "second day"},
	}
	s.Update(created.LogID, LogPatch{Entries: &replacement})

	got, _ := s.GetByID(created.LogID)
	if len(got.Entries) != 2 {
		t.Fatalf("expected 2 entries after replace, got %d", len(got.Entries))
	}
	if got.Entries[0].Content != "rewritten" {
		t.Fatalf("expected first entry rewritten, got %q", got.Entries[0].Content)
	}
	if got.Entries[0].EntryID == "" || got.Entries[1].EntryID == "" {
		t.Fatalf("expected entry ids assigned on replace")
	}
}

func TestLogDecisionLifecycle(t *testing.T) {
	s := newTestLogStore()
	created := s.Add(models.Log{
		Entries: []models.Entry{{Date: "2026-06-01", Content: "x"}},
	})

	if err := Approve(s, created.LogID); err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	got, _ := s.GetByID(created.LogID)
	if got.Status != models.StatusApproved {
		t.Fatalf("expected approved, got %q", got.Status)
	}
	if err := Approve(s, created.LogID); err != ErrAlreadyDecided {
		t.Fatalf("expected ErrAlreadyDecided, got %v", err)
	}
}

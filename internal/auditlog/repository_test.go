package auditlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twui.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &AuditEntry{
		Action:  ActionSave,
		Tenant:  "acme",
		After:   `{"theme":"dark"}`,
		Outcome: OutcomeSuccess,
	}

	if err := r.Save(t.Context(), entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)
	ctx := t.Context()

	for i := range 3 {
		entry := &AuditEntry{
			Action:    ActionSave,
			Tenant:    "acme",
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(ctx, entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByTenant(t *testing.T) {
	r := tempRepo(t)
	ctx := t.Context()

	entries := []*AuditEntry{
		{Action: ActionSave, Tenant: "acme", Outcome: OutcomeSuccess},
		{Action: ActionSave, Tenant: "globex", Outcome: OutcomeSuccess},
		{Action: ActionDelete, Tenant: "acme", Outcome: OutcomeError, Detail: "tenant not found"},
	}
	for _, entry := range entries {
		if err := r.Save(ctx, entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := r.ListByTenant(ctx, "acme", 10)
	if err != nil {
		t.Fatalf("ListByTenant failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, entry := range got {
		if entry.Tenant != "acme" {
			t.Errorf("expected tenant 'acme', got %q", entry.Tenant)
		}
	}
	if got[0].Action != ActionDelete || got[0].Detail != "tenant not found" {
		t.Errorf("expected newest entry first, got %+v", got[0])
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)
	ctx := t.Context()

	oldEntry := &AuditEntry{
		Action:    ActionSave,
		Tenant:    "acme",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &AuditEntry{
		Action:    ActionSave,
		Tenant:    "acme",
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(ctx, oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(ctx, recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestMetadata(t *testing.T) {
	ctx := WithMetadata(context.Background(), Metadata{Command: "twui tenant set"})
	ctx = WithMetadata(ctx, Metadata{})

	if got := MetadataFromContext(ctx).Command; got != "twui tenant set" {
		t.Errorf("Command = %q, want %q", got, "twui tenant set")
	}
	if got := MetadataFromContext(context.Background()); got != (Metadata{}) {
		t.Errorf("expected empty metadata, got %+v", got)
	}
}

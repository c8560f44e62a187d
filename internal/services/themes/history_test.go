package themes

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nathanbeddoewebdev/twui/internal/auditlog"
	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/themestore"
)

func newServiceWithHistory(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twui.db")
	repo, err := themestore.OpenAt(path)
	if err != nil {
		t.Fatalf("themestore.OpenAt failed: %v", err)
	}
	history, err := auditlog.OpenAt(path)
	if err != nil {
		t.Fatalf("auditlog.OpenAt failed: %v", err)
	}
	svc := NewService(repo, theme.Config{}, nil).WithHistory(history)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestHistory_RecordsChanges(t *testing.T) {
	svc := newServiceWithHistory(t)
	ctx := auditlog.WithMetadata(context.Background(), auditlog.Metadata{Command: "twui tenant set"})

	if err := svc.Save(ctx, "acme", theme.Config{Theme: theme.ModeDark}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := svc.Save(ctx, "acme", theme.Config{Theme: theme.ModeDark, Radius: theme.RadiusLarge}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := svc.Delete(ctx, "acme"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	entries, err := svc.History(ctx, "acme", 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	del, second, first := entries[0], entries[1], entries[2]
	if first.Action != auditlog.ActionSave || first.Before != "" || first.Detail != "theme: unset -> dark" {
		t.Errorf("unexpected first entry: %+v", first)
	}
	if second.Detail != "radius: unset -> large" {
		t.Errorf("second Detail = %q", second.Detail)
	}
	if del.Action != auditlog.ActionDelete || del.After != "" || !strings.Contains(del.Before, `"radius":"large"`) {
		t.Errorf("unexpected delete entry: %+v", del)
	}
	for _, e := range entries {
		if e.Command != "twui tenant set" || e.Outcome != auditlog.OutcomeSuccess {
			t.Errorf("unexpected entry metadata: %+v", e)
		}
	}
}

func TestHistory_RecordsFailedDelete(t *testing.T) {
	svc := newServiceWithHistory(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, "ghost"); !errors.Is(err, themestore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	entries, err := svc.History(ctx, "", 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Outcome != auditlog.OutcomeError {
		t.Fatalf("expected one failed entry, got %+v", entries)
	}
}

func TestHistory_Prune(t *testing.T) {
	svc := newServiceWithHistory(t)
	ctx := context.Background()

	if err := svc.Save(ctx, "acme", theme.Config{Theme: theme.ModeDark}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	removed, err := svc.PruneHistory(ctx, time.Hour)
	if err != nil {
		t.Fatalf("PruneHistory failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected recent entry to survive, removed %d", removed)
	}
}

func TestHistory_Disabled(t *testing.T) {
	svc := newService(t, theme.Config{})

	if _, err := svc.History(context.Background(), "", 10); !errors.Is(err, ErrNoHistory) {
		t.Errorf("expected ErrNoHistory, got %v", err)
	}
	if _, err := svc.PruneHistory(context.Background(), time.Hour); !errors.Is(err, ErrNoHistory) {
		t.Errorf("expected ErrNoHistory, got %v", err)
	}
}

func TestDescribeChange(t *testing.T) {
	tests := []struct {
		name          string
		before, after *theme.Config
		want          string
	}{
		{"both nil", nil, nil, "no changes"},
		{"created", nil, &theme.Config{AccentColor: theme.AccentTeal}, "accentColor: unset -> teal"},
		{"deleted", &theme.Config{HasBackground: theme.Bool(false)}, nil, "hasBackground: false -> unset"},
		{
			"several",
			&theme.Config{Theme: theme.ModeLight, Scaling: theme.Scaling100},
			&theme.Config{Theme: theme.ModeDark, Scaling: theme.Scaling110},
			"theme: light -> dark, scaling: 100% -> 110%",
		},
		{"tenant only", &theme.Config{TenantID: "a"}, &theme.Config{TenantID: "b"}, "no changes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeChange(tt.before, tt.after); got != tt.want {
				t.Errorf("DescribeChange = %q, want %q", got, tt.want)
			}
		})
	}
}

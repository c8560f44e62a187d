package themes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/twui/internal/theme"
	"nathanbeddoewebdev/twui/internal/themestore"

	"github.com/google/go-cmp/cmp"
)

func newService(t *testing.T, defaults theme.Config) *Service {
	t.Helper()
	repo, err := themestore.OpenAt(filepath.Join(t.TempDir(), "twui.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	svc := NewService(repo, defaults, nil)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestEffective_NoTenant(t *testing.T) {
	svc := newService(t, theme.Config{AccentColor: theme.AccentOrange, TenantID: "ignored"})

	got, err := svc.Effective(context.Background(), "")
	if err != nil {
		t.Fatalf("Effective failed: %v", err)
	}
	want := theme.Default()
	want.AccentColor = theme.AccentOrange
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("effective config mismatch (-want +got):\n%s", diff)
	}
}

func TestEffective_UnknownTenantInheritsDefaults(t *testing.T) {
	svc := newService(t, theme.Config{Theme: theme.ModeDark})

	got, err := svc.Effective(context.Background(), "acme")
	if err != nil {
		t.Fatalf("Effective failed: %v", err)
	}
	if got.Theme != theme.ModeDark || got.TenantID != "acme" {
		t.Errorf("unexpected config: %+v", got)
	}
}

func TestEffective_LayersTenantOverrides(t *testing.T) {
	svc := newService(t, theme.Config{Theme: theme.ModeDark, Radius: theme.RadiusLarge})
	ctx := context.Background()

	if err := svc.Save(ctx, "acme", theme.Config{Theme: theme.ModeLight, AccentColor: theme.AccentPlum}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := svc.Effective(ctx, "acme")
	if err != nil {
		t.Fatalf("Effective failed: %v", err)
	}
	want := theme.Default()
	want.Theme = theme.ModeLight
	want.AccentColor = theme.AccentPlum
	want.Radius = theme.RadiusLarge
	want.TenantID = "acme"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("effective config mismatch (-want +got):\n%s", diff)
	}

	stored, err := svc.Get(ctx, "acme")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Radius != "" {
		t.Errorf("stored overrides should not include defaults, got radius %q", stored.Radius)
	}
}

func TestEffective_InvalidTenant(t *testing.T) {
	svc := newService(t, theme.Config{})

	_, err := svc.Effective(context.Background(), `a"b`)
	if !errors.Is(err, theme.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestSave_Validates(t *testing.T) {
	svc := newService(t, theme.Config{})

	err := svc.Save(context.Background(), "acme", theme.Config{AccentColor: "chartreuse"})
	if !errors.Is(err, theme.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestDeleteAndList(t *testing.T) {
	svc := newService(t, theme.Config{})
	ctx := context.Background()

	for _, tenant := range []string{"globex", "acme"} {
		if err := svc.Save(ctx, tenant, theme.Config{Theme: theme.ModeLight}); err != nil {
			t.Fatalf("Save(%s) failed: %v", tenant, err)
		}
	}
	if err := svc.Delete(ctx, "globex"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "globex"); !errors.Is(err, themestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Tenant != "acme" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestNilRepository(t *testing.T) {
	svc := NewService(nil, theme.Config{}, nil)
	ctx := context.Background()

	got, err := svc.Effective(ctx, "acme")
	if err != nil {
		t.Fatalf("Effective failed: %v", err)
	}
	if got.TenantID != "acme" {
		t.Errorf("TenantID = %q", got.TenantID)
	}
	if err := svc.Save(ctx, "acme", theme.Config{}); err == nil {
		t.Error("expected Save to fail without a store")
	}
	if list, err := svc.List(ctx); err != nil || list != nil {
		t.Errorf("List = %v, %v", list, err)
	}
}

func TestExportAll(t *testing.T) {
	svc := newService(t, theme.Config{})
	ctx := context.Background()

	for _, tenant := range []string{"acme", "../escape"} {
		if err := svc.Save(ctx, tenant, theme.Config{Theme: theme.ModeDark}); err != nil {
			t.Fatalf("Save(%s) failed: %v", tenant, err)
		}
	}

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := svc.ExportAll(ctx, dir, ExportOptions{HTML: true})
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "default.css"),
		filepath.Join(dir, "default.html"),
		filepath.Join(dir, "tenants", "..%2Fescape.css"),
		filepath.Join(dir, "tenants", "..%2Fescape.html"),
		filepath.Join(dir, "tenants", "acme.css"),
		filepath.Join(dir, "tenants", "acme.html"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("exported paths mismatch (-want +got):\n%s", diff)
	}

	css, err := os.ReadFile(filepath.Join(dir, "tenants", "acme.css"))
	if err != nil {
		t.Fatalf("read acme.css: %v", err)
	}
	if !strings.HasPrefix(string(css), `:root[data-theme="dark"][data-tenant="acme"] {`) {
		t.Errorf("unexpected stylesheet:\n%s", css)
	}

	page, err := os.ReadFile(filepath.Join(dir, "default.html"))
	if err != nil {
		t.Fatalf("read default.html: %v", err)
	}
	if !strings.Contains(string(page), `data-theme="light"`) {
		t.Errorf("preview page missing root attributes:\n%s", page)
	}
}

func TestExportAll_Cancelled(t *testing.T) {
	svc := newService(t, theme.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.ExportAll(ctx, t.TempDir(), ExportOptions{}); err == nil {
		t.Error("expected error for cancelled context")
	}
}
